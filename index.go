package dropoff

import "fmt"

// IndexMap maps a location name to its position in the location listing.
type IndexMap map[string]int

// BuildIndexMap numbers the locations in listing order. Names must be unique.
func BuildIndexMap(locations []string) IndexMap {
	idx := make(IndexMap, len(locations))
	for i, name := range locations {
		idx[name] = i
	}
	return idx
}

func (m IndexMap) Index(name string) (int, error) {
	i, ok := m[name]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrUnknownLocation, name)
	}
	return i, nil
}

// houseIndices resolves the houses in listing order.
func houseIndices(inst *Instance, idx IndexMap) ([]int, error) {
	hs := make([]int, 0, len(inst.Houses))
	for _, h := range inst.Houses {
		i, err := idx.Index(h)
		if err != nil {
			return nil, fmt.Errorf("house: %w", err)
		}
		hs = append(hs, i)
	}
	return hs, nil
}
