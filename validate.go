package dropoff

import (
	"fmt"

	"go.uber.org/multierr"
)

// Validate reports every structural problem of inst at once. Generation does not
// call it; bad instances otherwise fail at the first section that hits the problem.
func Validate(inst *Instance) error {
	var err error
	if inst.HouseCount != len(inst.Houses) {
		err = multierr.Append(err, fmt.Errorf("%w: %d names for %d houses", ErrInvalidInput, len(inst.Houses), inst.HouseCount))
	}

	seen := make(map[string]bool, len(inst.Locations))
	for _, l := range inst.Locations {
		if seen[l] {
			err = multierr.Append(err, fmt.Errorf("%w: %q", ErrDuplicateLocation, l))
		}
		seen[l] = true
	}
	houses := make(map[string]bool, len(inst.Houses))
	for _, h := range inst.Houses {
		if !seen[h] {
			err = multierr.Append(err, fmt.Errorf("house: %w: %q", ErrUnknownLocation, h))
		}
		if houses[h] {
			err = multierr.Append(err, fmt.Errorf("%w: house %q listed twice", ErrInvalidInput, h))
		}
		houses[h] = true
	}
	if !seen[inst.Start] {
		err = multierr.Append(err, fmt.Errorf("start: %w: %q", ErrUnknownLocation, inst.Start))
	}

	if shapeErr := checkShape(inst); shapeErr != nil {
		return multierr.Append(err, shapeErr)
	}
	for i, row := range inst.Adjacency {
		for j, w := range row {
			if w.Edge && w.Value < 0 {
				err = multierr.Append(err, fmt.Errorf("%w: negative weight %v at (%d,%d)", ErrInvalidInput, w.Value, i, j))
			}
		}
	}
	return err
}
