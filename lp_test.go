package dropoff_test

import (
	"bytes"
	"strings"
	"testing"

	"git.solver4all.com/azaryc2s/dropoff"
	"github.com/stretchr/testify/require"
)

// TestAssemble_Triangle checks the full document of the directed triangle.
func TestAssemble_Triangle(t *testing.T) {
	text, err := dropoff.NewGenerator().Assemble(triangle())
	require.NoError(t, err)
	require.Equal(t, triangleLP, text)
}

// TestAssemble_Idempotent runs the generation twice on the same instance.
func TestAssemble_Idempotent(t *testing.T) {
	gen := dropoff.NewGenerator()
	inst := complete(6)
	first, err := gen.Assemble(inst)
	require.NoError(t, err)
	second, err := gen.Assemble(inst)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestAssemble_SectionOrder(t *testing.T) {
	text, err := dropoff.NewGenerator().Assemble(complete(4))
	require.NoError(t, err)

	last := -1
	for _, header := range []string{"Minimize\n", "Subject To\n", "Bounds\n", "Binary\n", "Integers\n", "End\n"} {
		pos := strings.Index(text, header)
		require.Greater(t, pos, last, header)
		last = pos
	}
	require.True(t, strings.HasSuffix(text, "End\n"))
}

func TestBuild_BlockSizes(t *testing.T) {
	inst := complete(5)
	doc, err := dropoff.NewGenerator().Build(inst)
	require.NoError(t, err)

	n, h := 5, 5
	require.Len(t, doc.Constraints, h+n+(n-1)*(n-2)+h*n+1)
	require.Empty(t, doc.Objective)
	require.Empty(t, doc.Bounds)
	require.Len(t, doc.Binary, n*(n-1)+n*h)
	require.Len(t, doc.Integers, n-1)
}

func TestGenerate_ComparatorGE(t *testing.T) {
	cfg := dropoff.DefaultConfig()
	cfg.SourceComparator = dropoff.COMPARATOR_GE
	var buf bytes.Buffer
	require.NoError(t, dropoff.NewGenerator(dropoff.WithConfig(cfg)).Generate(triangle(), &buf))
	require.Contains(t, buf.String(), "\tx0_1 + x0_2 >= 1\n")
	require.NotContains(t, buf.String(), "> 0")
}

// TestGenerate_NothingWrittenOnError makes sure a failing instance leaves the
// writer untouched.
func TestGenerate_NothingWrittenOnError(t *testing.T) {
	inst := triangle()
	inst.Start = "Z"
	var buf bytes.Buffer
	err := dropoff.NewGenerator().Generate(inst, &buf)
	require.ErrorIs(t, err, dropoff.ErrUnknownLocation)
	require.Zero(t, buf.Len())
}

func TestBuild_UnknownHouse(t *testing.T) {
	inst := triangle()
	inst.Houses = []string{"Q"}
	_, err := dropoff.NewGenerator().Build(inst)
	require.ErrorIs(t, err, dropoff.ErrUnknownLocation)
}

func TestBuild_ShapeMismatch(t *testing.T) {
	inst := triangle()
	inst.Adjacency = inst.Adjacency[:2]
	_, err := dropoff.NewGenerator().Build(inst)
	require.ErrorIs(t, err, dropoff.ErrShapeMismatch)

	inst = triangle()
	inst.Locations = inst.Locations[:2]
	_, err = dropoff.NewGenerator().Build(inst)
	require.ErrorIs(t, err, dropoff.ErrShapeMismatch)
}

func TestBuild_TooSmall(t *testing.T) {
	inst := &dropoff.Instance{LocationCount: 1, Locations: []string{"A"}, Start: "A"}
	_, err := dropoff.NewGenerator().Build(inst)
	require.ErrorIs(t, err, dropoff.ErrInvalidInput)
}

// TestBuild_CostObjective fills the objective with driving and walking costs.
func TestBuild_CostObjective(t *testing.T) {
	cfg := dropoff.DefaultConfig()
	cfg.Objective = dropoff.OBJECTIVE_COST
	cfg.DrivingFactor = 0.5
	doc, err := dropoff.NewGenerator(dropoff.WithConfig(cfg)).Build(triangle())
	require.NoError(t, err)
	// walking to B: from A 1, from C 3 + 1
	require.Equal(t, []string{"0.5 x0_1 + 1 x1_2 + 1.5 x2_0 + 1 c0_1 + 4 c2_1"}, doc.Objective)
	require.True(t, strings.HasPrefix(doc.String(), "Minimize\n\t0.5 x0_1 + "))
}

func TestBuild_CostObjectiveDisconnected(t *testing.T) {
	inst := triangle()
	inst.Adjacency[2][0] = dropoff.Missing()
	cfg := dropoff.DefaultConfig()
	cfg.Objective = dropoff.OBJECTIVE_COST
	_, err := dropoff.NewGenerator(dropoff.WithConfig(cfg)).Build(inst)
	require.ErrorIs(t, err, dropoff.ErrDisconnected)
}
