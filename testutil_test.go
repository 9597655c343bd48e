package dropoff_test

import (
	"fmt"

	"git.solver4all.com/azaryc2s/dropoff"
)

// triangle is the directed cycle A -> B -> C -> A with B as the only house.
func triangle() *dropoff.Instance {
	x := dropoff.Missing()
	w := dropoff.EdgeWeight
	return &dropoff.Instance{
		Name:          "triangle",
		LocationCount: 3,
		HouseCount:    1,
		Locations:     []string{"A", "B", "C"},
		Houses:        []string{"B"},
		Start:         "A",
		Adjacency: [][]dropoff.Weight{
			{x, w(1), x},
			{x, x, w(2)},
			{w(3), x, x},
		},
	}
}

// complete builds an n-location complete graph with unit weights where every
// location is a house.
func complete(n int) *dropoff.Instance {
	inst := &dropoff.Instance{Name: fmt.Sprintf("complete_%d", n), LocationCount: n, HouseCount: n}
	for i := 0; i < n; i++ {
		inst.Locations = append(inst.Locations, fmt.Sprintf("L%d", i))
		row := make([]dropoff.Weight, n)
		for j := range row {
			if i != j {
				row[j] = dropoff.EdgeWeight(1)
			}
		}
		inst.Adjacency = append(inst.Adjacency, row)
	}
	inst.Houses = append([]string(nil), inst.Locations...)
	inst.Start = inst.Locations[0]
	return inst
}

const triangleLP = "Minimize\n" +
	"Subject To\n" +
	"\tc0_1 + c1_1 + c2_1 = 1\n" +
	"\tx1_0 - x0_1 + x2_0 - x0_2 = 0\n" +
	"\tx0_1 - x1_0 + x2_1 - x1_2 = 0\n" +
	"\tx0_2 - x2_0 + x1_2 - x2_1 = 0\n" +
	"\tu1 - u2 + 3 x1_2 <= 2\n" +
	"\tu2 - u1 + 3 x2_1 <= 2\n" +
	"\tx1_0 + x2_0 - c0_1 >= 0\n" +
	"\tx0_1 + x2_1 - c1_1 >= 0\n" +
	"\tx0_2 + x1_2 - c2_1 >= 0\n" +
	"\tx0_1 + x0_2 > 0\n" +
	"Bounds\n" +
	"\tx0_2 = 0\n" +
	"\tx1_0 = 0\n" +
	"\tx2_1 = 0\n" +
	"Binary\n" +
	"\tx0_1 x1_2 x2_0 c0_1 c1_1 c2_1\n" +
	"Integers\n" +
	"\tu1 u2\n" +
	"End\n"
