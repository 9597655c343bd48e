package dropoff

import "fmt"

func checkShape(inst *Instance) error {
	n := inst.LocationCount
	if len(inst.Locations) != n {
		return fmt.Errorf("%w: %d names for %d locations", ErrShapeMismatch, len(inst.Locations), n)
	}
	if len(inst.Adjacency) != n {
		return fmt.Errorf("%w: %d rows for %d locations", ErrShapeMismatch, len(inst.Adjacency), n)
	}
	for i, row := range inst.Adjacency {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d cells for %d locations", ErrShapeMismatch, i, len(row), n)
		}
	}
	return nil
}

// Bounds pins the edge variables of missing edges to zero.
func Bounds(inst *Instance) ([]string, error) {
	if err := checkShape(inst); err != nil {
		return nil, err
	}
	var lines []string
	for i, row := range inst.Adjacency {
		for j, w := range row {
			if i != j && !w.Edge {
				lines = append(lines, EdgeVar(i, j)+" = 0")
			}
		}
	}
	return lines, nil
}

// BinaryVars lists the real edge variables followed by every assignment variable.
func BinaryVars(inst *Instance, idx IndexMap) ([]string, error) {
	if err := checkShape(inst); err != nil {
		return nil, err
	}
	hs, err := houseIndices(inst, idx)
	if err != nil {
		return nil, err
	}
	var vars []string
	for i, row := range inst.Adjacency {
		for j, w := range row {
			if i != j && w.Edge {
				vars = append(vars, EdgeVar(i, j))
			}
		}
	}
	for i := 0; i < inst.LocationCount; i++ {
		for _, h := range hs {
			vars = append(vars, AssignVar(i, h))
		}
	}
	return vars, nil
}

// IntegerVars lists the order variables u1 .. u{n-1}.
func IntegerVars(inst *Instance) []string {
	var vars []string
	for i := 1; i < inst.LocationCount; i++ {
		vars = append(vars, OrderVar(i))
	}
	return vars
}
