package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tonewave/state"
)

// writeFixture drops the canonical 3-node toy run into a temp dir.
func writeFixture(t *testing.T) (dir string, cfg runConfig) {
	t.Helper()
	dir = t.TempDir()
	cfg = defaultRunConfig()
	cfg.Graph = filepath.Join(dir, "graph.txt")
	cfg.States = filepath.Join(dir, "states.txt")
	cfg.History = filepath.Join(dir, "results", "history.txt")
	cfg.OutStates = filepath.Join(dir, "results", "final_states.txt")
	cfg.Steps = 20
	cfg.Alpha = 0.25
	cfg.Sequential = true

	require.NoError(t, os.WriteFile(cfg.Graph, []byte("3 4\n0 1\n1 2\n2 0\n0 2\n"), 0o644))
	require.NoError(t, os.WriteFile(cfg.States, []byte("0.5\n-0.6\n0.0\n"), 0o644))

	return dir, cfg
}

// TestRunSimulation_WritesOutputs drives the full load → run → persist
// pipeline and spot-checks the first history entry.
func TestRunSimulation_WritesOutputs(t *testing.T) {
	_, cfg := writeFixture(t)

	require.NoError(t, runSimulation(cfg))

	hist, err := state.ReadAll(mustOpenPath(t, cfg.History))
	require.NoError(t, err)
	require.Len(t, hist, 20)
	assert.InDelta(t, 0.0125, hist[0], 1e-9)

	final, err := state.Load(cfg.OutStates, 3)
	require.NoError(t, err)
	assert.Len(t, final, 3)
}

// TestRunSimulation_SequentialParallelAgree runs both strategies through
// the CLI pipeline and compares their persisted histories.
func TestRunSimulation_SequentialParallelAgree(t *testing.T) {
	dir, cfg := writeFixture(t)

	require.NoError(t, runSimulation(cfg))
	seq, err := state.ReadAll(mustOpenPath(t, cfg.History))
	require.NoError(t, err)

	cfg.Sequential = false
	cfg.Workers = 3
	cfg.History = filepath.Join(dir, "results", "history_par.txt")
	cfg.OutStates = filepath.Join(dir, "results", "final_par.txt")
	require.NoError(t, runSimulation(cfg))
	par, err := state.ReadAll(mustOpenPath(t, cfg.History))
	require.NoError(t, err)

	require.Len(t, par, len(seq))
	for i := range seq {
		assert.InDelta(t, seq[i], par[i], 1e-7, "step %d", i)
	}
}

// TestRunSimulation_FailsFastBeforeOutputs: a malformed states file must
// abort before any output file is created.
func TestRunSimulation_FailsFastBeforeOutputs(t *testing.T) {
	_, cfg := writeFixture(t)
	require.NoError(t, os.WriteFile(cfg.States, []byte("0.5\n-0.6\n"), 0o644))

	require.ErrorIs(t, runSimulation(cfg), state.ErrCountMismatch)
	assert.NoFileExists(t, cfg.History)
	assert.NoFileExists(t, cfg.OutStates)
}

// TestLoadRunConfig_Overlay: YAML values land on top of defaults.
func TestLoadRunConfig_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"graph: g.txt\nsteps: 7\nalpha: 0.5\nworkers: 2\n"), 0o644))

	cfg := defaultRunConfig()
	require.NoError(t, loadRunConfig(path, &cfg))
	assert.Equal(t, "g.txt", cfg.Graph)
	assert.Equal(t, 7, cfg.Steps)
	assert.Equal(t, 0.5, cfg.Alpha)
	assert.Equal(t, 2, cfg.Workers)
	// untouched keys keep their defaults
	assert.Equal(t, "data/states.txt", cfg.States)
}

func mustOpenPath(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	return f
}
