package dropoff_test

import (
	"os"
	"path/filepath"
	"testing"

	"git.solver4all.com/azaryc2s/dropoff"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Default(t *testing.T) {
	cfg, err := dropoff.LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, dropoff.DefaultConfig(), cfg)
	require.NoError(t, cfg.Check())
}

// TestLoadConfig_Partial keeps the file's values and defaults the rest.
func TestLoadConfig_Partial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lpgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source_comparator: ge\nworkers: 2\noutput_dir: gurobi_inputs\n"), 0644))

	cfg, err := dropoff.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, dropoff.COMPARATOR_GE, cfg.SourceComparator)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, "gurobi_inputs", cfg.OutputDir)
	require.Equal(t, dropoff.OBJECTIVE_NONE, cfg.Objective)
	require.InDelta(t, dropoff.DefaultDrivingFactor, cfg.DrivingFactor, 1e-12)
}

func TestParseConfig_Invalid(t *testing.T) {
	_, err := dropoff.ParseConfig([]byte("source_comparator: lt\n"))
	require.ErrorContains(t, err, "invalid config")

	_, err = dropoff.ParseConfig([]byte("workers: 100\n"))
	require.ErrorContains(t, err, "invalid config")

	_, err = dropoff.ParseConfig([]byte("objective: [\n"))
	require.ErrorContains(t, err, "failed to parse config YAML")
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := dropoff.LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
