package dropoff

import (
	"fmt"
	"math"
	"strconv"
)

// Objective returns the objective lines for mode. OBJECTIVE_NONE keeps the model a
// pure feasibility problem.
func Objective(inst *Instance, idx IndexMap, mode string, drivingFactor float64) ([]string, error) {
	switch mode {
	case OBJECTIVE_NONE, "":
		return nil, nil
	case OBJECTIVE_COST:
	default:
		return nil, fmt.Errorf("%w: unknown objective %q", ErrInvalidInput, mode)
	}
	if err := checkShape(inst); err != nil {
		return nil, err
	}
	hs, err := houseIndices(inst, idx)
	if err != nil {
		return nil, err
	}
	dist := ShortestPaths(inst)

	var terms []string
	for i, row := range inst.Adjacency {
		for j, w := range row {
			if i == j || !w.Edge {
				continue
			}
			if c := drivingFactor * w.Value; c != 0 {
				terms = append(terms, coef(c)+" "+EdgeVar(i, j))
			}
		}
	}
	for i := 0; i < inst.LocationCount; i++ {
		for _, h := range hs {
			d := dist[i][h]
			if math.IsInf(d, 1) {
				return nil, fmt.Errorf("%w: %s cannot walk to %s", ErrDisconnected, inst.Locations[i], inst.Locations[h])
			}
			if d != 0 {
				terms = append(terms, coef(d)+" "+AssignVar(i, h))
			}
		}
	}
	if len(terms) == 0 {
		return nil, nil
	}
	return []string{sum(terms)}, nil
}

func coef(c float64) string {
	return strconv.FormatFloat(c, 'f', -1, 64)
}
