package dropoff_test

import (
	"strings"
	"testing"

	"git.solver4all.com/azaryc2s/dropoff"
	"github.com/stretchr/testify/require"
)

// TestCoverageConstraints_Completeness expects one line per house summing one
// assignment variable per location.
func TestCoverageConstraints_Completeness(t *testing.T) {
	inst := complete(6)
	inst.Houses = []string{"L2", "L5", "L0"}
	inst.HouseCount = 3
	idx := dropoff.BuildIndexMap(inst.Locations)

	lines, err := dropoff.CoverageConstraints(inst, idx)
	require.NoError(t, err)
	require.Len(t, lines, 3)
	for k, h := range []int{2, 5, 0} {
		lhs, rhs, ok := strings.Cut(lines[k], " = ")
		require.True(t, ok)
		require.Equal(t, "1", rhs)
		terms := strings.Split(lhs, " + ")
		require.Len(t, terms, 6)
		for i, term := range terms {
			require.Equal(t, dropoff.AssignVar(i, h), term)
		}
	}
}

// TestDegreeConstraints_Symmetry checks that on a complete 3-graph every line
// mentions every location on both the in and the out side.
func TestDegreeConstraints_Symmetry(t *testing.T) {
	lines := dropoff.DegreeConstraints(complete(3))
	require.Equal(t, []string{
		"x1_0 - x0_1 + x2_0 - x0_2 = 0",
		"x0_1 - x1_0 + x2_1 - x1_2 = 0",
		"x0_2 - x2_0 + x1_2 - x2_1 = 0",
	}, lines)
	for i, line := range lines {
		for j := 0; j < 3; j++ {
			if j == i {
				continue
			}
			require.Contains(t, line, dropoff.EdgeVar(j, i))
			require.Contains(t, line, "- "+dropoff.EdgeVar(i, j))
		}
	}
}

func TestSubtourConstraints_Count(t *testing.T) {
	require.Len(t, dropoff.SubtourConstraints(complete(4)), 6)
	require.Len(t, dropoff.SubtourConstraints(complete(10)), 72)
	require.Empty(t, dropoff.SubtourConstraints(complete(2)))

	lines := dropoff.SubtourConstraints(complete(4))
	require.Equal(t, "u1 - u2 + 4 x1_2 <= 3", lines[0])
	require.Equal(t, "u3 - u2 + 4 x3_2 <= 3", lines[5])
	for _, line := range lines {
		require.NotContains(t, line, "u0")
	}
}

func TestDropoffConstraints(t *testing.T) {
	inst := triangle()
	lines, err := dropoff.DropoffConstraints(inst, dropoff.BuildIndexMap(inst.Locations))
	require.NoError(t, err)
	require.Equal(t, []string{
		"x1_0 + x2_0 - c0_1 >= 0",
		"x0_1 + x2_1 - c1_1 >= 0",
		"x0_2 + x1_2 - c2_1 >= 0",
	}, lines)

	inst = complete(4)
	lines, err = dropoff.DropoffConstraints(inst, dropoff.BuildIndexMap(inst.Locations))
	require.NoError(t, err)
	require.Len(t, lines, 16)
}

func TestSourceConstraint(t *testing.T) {
	inst := complete(4)
	inst.Start = "L2"
	idx := dropoff.BuildIndexMap(inst.Locations)

	line, err := dropoff.SourceConstraint(inst, idx, dropoff.COMPARATOR_GT)
	require.NoError(t, err)
	require.Equal(t, "x2_0 + x2_1 + x2_3 > 0", line)

	line, err = dropoff.SourceConstraint(inst, idx, dropoff.COMPARATOR_GE)
	require.NoError(t, err)
	require.Equal(t, "x2_0 + x2_1 + x2_3 >= 1", line)

	_, err = dropoff.SourceConstraint(inst, idx, "lt")
	require.ErrorIs(t, err, dropoff.ErrInvalidInput)

	inst.Start = "nowhere"
	_, err = dropoff.SourceConstraint(inst, idx, dropoff.COMPARATOR_GT)
	require.ErrorIs(t, err, dropoff.ErrUnknownLocation)
}

// TestBoundsBinary_Complementarity requires every off-diagonal edge variable to
// be pinned or declared binary, never both.
func TestBoundsBinary_Complementarity(t *testing.T) {
	inst := complete(5)
	for _, cell := range [][2]int{{0, 3}, {3, 0}, {1, 4}, {2, 1}, {4, 2}} {
		inst.Adjacency[cell[0]][cell[1]] = dropoff.Missing()
	}
	idx := dropoff.BuildIndexMap(inst.Locations)

	bounds, err := dropoff.Bounds(inst)
	require.NoError(t, err)
	binary, err := dropoff.BinaryVars(inst, idx)
	require.NoError(t, err)
	require.Len(t, bounds, 5)

	pinned := map[string]bool{}
	for _, line := range bounds {
		name, rhs, ok := strings.Cut(line, " = ")
		require.True(t, ok)
		require.Equal(t, "0", rhs)
		pinned[name] = true
	}
	declared := map[string]bool{}
	for _, name := range binary {
		declared[name] = true
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			name := dropoff.EdgeVar(i, j)
			if i == j {
				require.False(t, pinned[name] || declared[name], name)
				continue
			}
			require.True(t, pinned[name] != declared[name], name)
		}
		for h := 0; h < 5; h++ {
			require.True(t, declared[dropoff.AssignVar(i, h)])
		}
	}
}

func TestIntegerVars(t *testing.T) {
	require.Equal(t, []string{"u1", "u2", "u3"}, dropoff.IntegerVars(complete(4)))
}

func TestBounds_ShapeMismatch(t *testing.T) {
	inst := complete(3)
	inst.Adjacency[1] = inst.Adjacency[1][:2]
	_, err := dropoff.Bounds(inst)
	require.ErrorIs(t, err, dropoff.ErrShapeMismatch)
	_, err = dropoff.BinaryVars(inst, dropoff.BuildIndexMap(inst.Locations))
	require.ErrorIs(t, err, dropoff.ErrShapeMismatch)
}
