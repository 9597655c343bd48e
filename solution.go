package dropoff

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadSolValues reads a solver solution file of "name value" lines. Lines
// starting with '#' are comments.
func ReadSolValues(r io.Reader) (map[string]float64, error) {
	values := make(map[string]float64)
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		t := strings.TrimSpace(scanner.Text())
		if t == "" || strings.HasPrefix(t, "#") {
			continue
		}
		fields := strings.Fields(t)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected name and value", ErrInvalidInput, line)
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad value %q", ErrInvalidInput, line, fields[1])
		}
		values[fields[0]] = v
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// DecodeSolution turns solver variable values back into a tour and dropoffs.
// Order variables are ignored.
func DecodeSolution(inst *Instance, values map[string]float64) (*Solution, error) {
	n := inst.LocationCount
	if len(inst.Locations) != n {
		return nil, fmt.Errorf("%w: %d names for %d locations", ErrShapeMismatch, len(inst.Locations), n)
	}
	idx := BuildIndexMap(inst.Locations)
	start, err := idx.Index(inst.Start)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	hs, err := houseIndices(inst, idx)
	if err != nil {
		return nil, err
	}

	edges := make([][]bool, n)
	assigned := make([][]bool, n)
	for i := 0; i < n; i++ {
		edges[i] = make([]bool, n)
		assigned[i] = make([]bool, n)
	}
	edgeCount := 0
	for name, val := range values {
		v, err := ParseVar(name)
		if err != nil {
			return nil, err
		}
		if v.Family == FAMILY_ORDER || val <= 0.5 {
			continue
		}
		if v.I >= n || v.J >= n {
			return nil, fmt.Errorf("%w: %q out of range", ErrInvalidVar, name)
		}
		if v.Family == FAMILY_EDGE {
			edges[v.I][v.J] = true
			edgeCount++
		} else {
			assigned[v.I][v.J] = true
		}
	}

	walk, used := findTour(edges, start)
	if used < edgeCount {
		return nil, fmt.Errorf("%w: %d of %d edges", ErrSubtour, edgeCount-used, edgeCount)
	}
	if walk[len(walk)-1] != start {
		return nil, fmt.Errorf("%w: tour does not return to %s", ErrInvalidSolution, inst.Start)
	}

	sol := &Solution{Dropoffs: make(map[string][]string)}
	for _, node := range walk {
		sol.Tour = append(sol.Tour, inst.Locations[node])
	}
	for i := 0; i < n; i++ {
		for _, h := range hs {
			if assigned[i][h] {
				loc := inst.Locations[i]
				sol.Dropoffs[loc] = append(sol.Dropoffs[loc], inst.Locations[h])
			}
		}
	}
	return sol, nil
}

// findTour walks every edge reachable from start exactly once, always taking the
// lowest numbered unused edge, and returns the closed walk and the edges used.
func findTour(edges [][]bool, start int) (tour []int, used int) {
	n := len(edges)
	next := make([]int, n)
	stack := []int{start}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		for next[node] < n && !edges[node][next[node]] {
			next[node]++
		}
		if next[node] < n {
			stack = append(stack, next[node])
			next[node]++
			used++
			continue
		}
		tour = append(tour, node)
		stack = stack[:len(stack)-1]
	}
	for i, j := 0, len(tour)-1; i < j; i, j = i+1, j-1 {
		tour[i], tour[j] = tour[j], tour[i]
	}
	return tour, used
}
