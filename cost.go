package dropoff

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"go.uber.org/multierr"
)

// ShortestPaths returns the all-pairs shortest walking distances over the real
// edges, +Inf where no path exists.
func ShortestPaths(inst *Instance) [][]float64 {
	n := len(inst.Adjacency)
	dist := make([][]float64, n)
	for i, row := range inst.Adjacency {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			switch {
			case i == j:
				dist[i][j] = 0
			case j < len(row) && row[j].Edge:
				dist[i][j] = row[j].Value
			default:
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if math.IsInf(dist[i][k], 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if d := dist[i][k] + dist[k][j]; d < dist[i][j] {
					dist[i][j] = d
				}
			}
		}
	}
	return dist
}

// GetTourLength sums the edge weights along a walk of location indices.
func GetTourLength(tour []int, inst *Instance) (float64, error) {
	length := 0.0
	for k := 0; k+1 < len(tour); k++ {
		u, v := tour[k], tour[k+1]
		w := inst.Adjacency[u][v]
		if u == v || !w.Edge {
			return 0, fmt.Errorf("%w: no edge %s -> %s", ErrInvalidSolution, inst.Locations[u], inst.Locations[v])
		}
		length += w.Value
	}
	return length, nil
}

// CheckSolution verifies sol against inst and fills in its costs. All problems
// found are returned together.
func CheckSolution(inst *Instance, sol *Solution, drivingFactor float64) error {
	if err := checkShape(inst); err != nil {
		return err
	}
	idx := BuildIndexMap(inst.Locations)
	if len(sol.Tour) == 0 {
		return fmt.Errorf("%w: empty tour", ErrInvalidSolution)
	}

	var err error
	if sol.Tour[0] != inst.Start || sol.Tour[len(sol.Tour)-1] != inst.Start {
		err = multierr.Append(err, fmt.Errorf("%w: tour must start and end at %s", ErrInvalidSolution, inst.Start))
	}
	tour := make([]int, 0, len(sol.Tour))
	onTour := make(map[string]bool, len(sol.Tour))
	for _, name := range sol.Tour {
		i, lookupErr := idx.Index(name)
		if lookupErr != nil {
			err = multierr.Append(err, fmt.Errorf("tour: %w", lookupErr))
			continue
		}
		tour = append(tour, i)
		onTour[name] = true
	}
	length, lengthErr := GetTourLength(tour, inst)
	err = multierr.Append(err, lengthErr)

	dist := ShortestPaths(inst)
	dropped := make(map[string]int, len(inst.Houses))
	walking := 0.0
	for _, loc := range slices.Sorted(maps.Keys(sol.Dropoffs)) {
		houses := sol.Dropoffs[loc]
		i, lookupErr := idx.Index(loc)
		if lookupErr != nil {
			err = multierr.Append(err, fmt.Errorf("dropoff: %w", lookupErr))
			continue
		}
		if !onTour[loc] {
			err = multierr.Append(err, fmt.Errorf("%w: dropoff %s is not on the tour", ErrInvalidSolution, loc))
		}
		for _, h := range houses {
			hi, lookupErr := idx.Index(h)
			if lookupErr != nil {
				err = multierr.Append(err, fmt.Errorf("house: %w", lookupErr))
				continue
			}
			if math.IsInf(dist[i][hi], 1) {
				err = multierr.Append(err, fmt.Errorf("%w: %s cannot walk to %s", ErrDisconnected, loc, h))
				continue
			}
			dropped[h]++
			walking += dist[i][hi]
		}
	}
	for _, h := range inst.Houses {
		if dropped[h] != 1 {
			err = multierr.Append(err, fmt.Errorf("%w: house %s dropped off %d times", ErrInvalidSolution, h, dropped[h]))
		}
	}
	if err != nil {
		return err
	}

	sol.DrivingCost = drivingFactor * length
	sol.WalkingCost = walking
	sol.Cost = sol.DrivingCost + sol.WalkingCost
	return nil
}
