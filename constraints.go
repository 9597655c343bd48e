package dropoff

import (
	"fmt"
	"strconv"
	"strings"
)

func sum(terms []string) string {
	return strings.Join(terms, " + ")
}

// CoverageConstraints drops every house at exactly one location.
func CoverageConstraints(inst *Instance, idx IndexMap) ([]string, error) {
	n := inst.LocationCount
	hs, err := houseIndices(inst, idx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(hs))
	for _, h := range hs {
		terms := make([]string, 0, n)
		for i := 0; i < n; i++ {
			terms = append(terms, AssignVar(i, h))
		}
		lines = append(lines, sum(terms)+" = 1")
	}
	return lines, nil
}

// DegreeConstraints keeps indegree equal to outdegree at every location.
func DegreeConstraints(inst *Instance) []string {
	n := inst.LocationCount
	lines := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var terms []string
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			terms = append(terms, EdgeVar(j, i)+" - "+EdgeVar(i, j))
		}
		lines = append(lines, sum(terms)+" = 0")
	}
	return lines
}

// SubtourConstraints are the Miller-Tucker-Zemlin inequalities. Location 0 has
// no order variable, so every cycle must pass through it.
func SubtourConstraints(inst *Instance) []string {
	n := inst.LocationCount
	ns := strconv.Itoa(n)
	rhs := strconv.Itoa(n - 1)
	var lines []string
	for i := 1; i < n; i++ {
		for j := 1; j < n; j++ {
			if i == j {
				continue
			}
			lines = append(lines, OrderVar(i)+" - "+OrderVar(j)+" + "+ns+" "+EdgeVar(i, j)+" <= "+rhs)
		}
	}
	return lines
}

// DropoffConstraints forbid a dropoff at a location the tour never enters.
func DropoffConstraints(inst *Instance, idx IndexMap) ([]string, error) {
	n := inst.LocationCount
	hs, err := houseIndices(inst, idx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(hs)*n)
	for _, h := range hs {
		for i := 0; i < n; i++ {
			var terms []string
			for j := 0; j < n; j++ {
				if j == i {
					continue
				}
				terms = append(terms, EdgeVar(j, i))
			}
			lines = append(lines, sum(terms)+" - "+AssignVar(i, h)+" >= 0")
		}
	}
	return lines, nil
}

// SourceConstraint forces an outgoing tour edge at the start location.
func SourceConstraint(inst *Instance, idx IndexMap, comparator string) (string, error) {
	s, err := idx.Index(inst.Start)
	if err != nil {
		return "", fmt.Errorf("start: %w", err)
	}
	n := inst.LocationCount
	var terms []string
	for j := 0; j < n; j++ {
		if j == s {
			continue
		}
		terms = append(terms, EdgeVar(s, j))
	}
	switch comparator {
	case COMPARATOR_GE:
		return sum(terms) + " >= 1", nil
	case COMPARATOR_GT, "":
		return sum(terms) + " > 0", nil
	}
	return "", fmt.Errorf("%w: unknown comparator %q", ErrInvalidInput, comparator)
}
