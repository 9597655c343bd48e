package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"git.solver4all.com/azaryc2s/dropoff"
	"github.com/urfave/cli"
)

func main() {
	nodes := dropoff.IntList()
	houseRatios := dropoff.FloatList()

	app := cli.NewApp()
	app.Name = "generator"
	app.Usage = "generate random connected dropoff instances"
	app.Flags = []cli.Flag{
		cli.GenericFlag{Name: "n", Value: nodes, Usage: "List of number of locations"},
		cli.GenericFlag{Name: "houses", Value: houseRatios, Usage: "List of house ratios a: 0 < a <= 1 as a portion of the locations"},
		cli.Float64Flag{Name: "density", Value: 0.3, Usage: "Probability of an edge between two locations besides the spanning path"},
		cli.IntFlag{Name: "count", Value: 10, Usage: "Number of instances per combination"},
		cli.IntFlag{Name: "x", Value: 10000, Usage: "Max value on the x-axis"},
		cli.IntFlag{Name: "y", Value: 10000, Usage: "Max value on the y-axis"},
		cli.StringFlag{Name: "name", Value: "dropoff", Usage: "Name for the instances"},
		cli.StringFlag{Name: "dir", Value: ".", Usage: "Output directory"},
		cli.Int64Flag{Name: "seed", Usage: "Random seed. Current time if not set"},
	}
	app.Action = func(c *cli.Context) error {
		log := dropoff.NewLogger(os.Stderr, false)
		if len(nodes.Values) == 0 || len(houseRatios.Values) == 0 {
			return cli.NewExitError("At least one -n and one -houses value needed", 2)
		}
		seed := time.Now().UnixNano()
		if c.IsSet("seed") {
			seed = c.Int64("seed")
		}
		rng := rand.New(rand.NewSource(seed))

		for l := 0; l < c.Int("count"); l++ {
			for _, n := range nodes.Values {
				for _, a := range houseRatios.Values {
					if n < 2 || a <= 0 || a > 1 {
						return cli.NewExitError(fmt.Sprintf("Invalid combination n=%d houses=%.2f", n, a), 2)
					}
					instName := fmt.Sprintf("%s_%d_%.2f_%d", c.String("name"), n, a, l)
					inst := randomInstance(rng, n, a, c.Float64("density"), c.Int("x"), c.Int("y"))
					inst.Name = instName
					fileName := filepath.Join(c.String("dir"), instName+".in")
					if err := dropoff.SaveInstance(fileName, inst); err != nil {
						return fmt.Errorf("At %s: %w", fileName, err)
					}
					log.Info("instance written", "output", fileName, "locations", n, "houses", len(inst.Houses))
				}
			}
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// randomInstance places n locations in the plane and links them along a random
// spanning path plus random extra edges, so every house can be walked to.
func randomInstance(rng *rand.Rand, n int, a float64, density float64, xTo, yTo int) *dropoff.Instance {
	coordinates := make([][]float64, n)
	locations := make([]string, n)
	for node := 0; node < n; node++ {
		coordinates[node] = []float64{float64(rng.Intn(xTo)), float64(rng.Intn(yTo))}
		locations[node] = fmt.Sprintf("L%d", node)
	}
	dist := dropoff.CalcEdgeDist(coordinates)

	adjacency := make([][]dropoff.Weight, n)
	for i := range adjacency {
		adjacency[i] = make([]dropoff.Weight, n)
	}
	link := func(i, j int) {
		d := dist[i][j]
		if d == 0 {
			d = 1
		}
		adjacency[i][j] = dropoff.EdgeWeight(d)
		adjacency[j][i] = dropoff.EdgeWeight(d)
	}
	order := rng.Perm(n)
	for k := 0; k+1 < n; k++ {
		link(order[k], order[k+1])
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adjacency[i][j].Edge && rng.Float64() < density {
				link(i, j)
			}
		}
	}

	houseCount := int(float64(n)*a + 0.5)
	if houseCount < 1 {
		houseCount = 1
	}
	var houses []string
	for _, node := range rng.Perm(n)[:houseCount] {
		houses = append(houses, locations[node])
	}

	return &dropoff.Instance{
		Comment:       fmt.Sprintf("random instance with %d locations and %d houses", n, houseCount),
		LocationCount: n,
		HouseCount:    houseCount,
		Locations:     locations,
		Houses:        houses,
		Start:         locations[rng.Intn(n)],
		Adjacency:     adjacency,
	}
}
