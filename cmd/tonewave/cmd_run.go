package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tonewave/diffuse"
	"github.com/katalvlaran/tonewave/digraph"
	"github.com/katalvlaran/tonewave/state"
)

// newRunCmd wires the simulation driver: load graph + states, run the
// requested strategy, persist history and final states.
func newRunCmd() *cobra.Command {
	cfg := defaultRunConfig()
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a diffusion simulation",
		Long: `Run loads a graph file and an initial states file, applies the
synchronous update rule for a fixed number of steps and writes the
per-step mean history plus the final state vector.

All parameters can come from a YAML config file; flags set on the
command line take precedence over file values.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				// Re-apply explicit flags on top of the file: read the
				// flag-set values first, overlay YAML, then restore any
				// flag the user actually changed.
				overrides := cfg
				cfg = defaultRunConfig()
				if err := loadRunConfig(configPath, &cfg); err != nil {
					return err
				}
				flags := cmd.Flags()
				if flags.Changed("graph") {
					cfg.Graph = overrides.Graph
				}
				if flags.Changed("states") {
					cfg.States = overrides.States
				}
				if flags.Changed("out-states") {
					cfg.OutStates = overrides.OutStates
				}
				if flags.Changed("history") {
					cfg.History = overrides.History
				}
				if flags.Changed("steps") {
					cfg.Steps = overrides.Steps
				}
				if flags.Changed("alpha") {
					cfg.Alpha = overrides.Alpha
				}
				if flags.Changed("workers") {
					cfg.Workers = overrides.Workers
				}
				if flags.Changed("sequential") {
					cfg.Sequential = overrides.Sequential
				}
			}

			return runSimulation(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML run configuration file")
	cmd.Flags().StringVar(&cfg.Graph, "graph", cfg.Graph, "graph file (N M header + edge lines)")
	cmd.Flags().StringVar(&cfg.States, "states", cfg.States, "initial states file (one value per node)")
	cmd.Flags().StringVar(&cfg.OutStates, "out-states", cfg.OutStates, "final states output file")
	cmd.Flags().StringVar(&cfg.History, "history", cfg.History, "per-step mean history output file")
	cmd.Flags().IntVar(&cfg.Steps, "steps", cfg.Steps, "number of timesteps")
	cmd.Flags().Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "blend factor in [0,1]")
	cmd.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "worker count (0 = all CPUs)")
	cmd.Flags().BoolVar(&cfg.Sequential, "sequential", cfg.Sequential, "force the single-threaded strategy")

	return cmd
}

// runSimulation is the load → run → persist pipeline behind the run
// command. Malformed inputs abort before any output file is touched.
func runSimulation(cfg runConfig) error {
	g, err := digraph.Load(cfg.Graph)
	if err != nil {
		return err
	}
	initial, err := state.Load(cfg.States, g.N())
	if err != nil {
		return err
	}

	opts := diffuse.DefaultOptions()
	opts.Steps = cfg.Steps
	opts.Alpha = cfg.Alpha
	opts.Workers = cfg.Workers
	if cfg.Sequential {
		opts.Strategy = diffuse.Sequential
	} else {
		opts.Strategy = diffuse.Parallel
	}

	slog.Info("starting simulation",
		"nodes", g.N(), "edges", g.M(),
		"steps", cfg.Steps, "alpha", cfg.Alpha,
		"strategy", opts.Strategy.String(), "workers", cfg.Workers)

	start := time.Now()
	interval := cfg.Steps / 20 // ~20 progress lines per run
	if interval < 1 {
		interval = 1
	}
	opts.OnStep = func(step int, mean float64) {
		if step%interval != 0 && step != cfg.Steps-1 {
			return
		}
		elapsed := time.Since(start)
		slog.Info("progress",
			"step", step+1, "of", cfg.Steps,
			"mean", fmt.Sprintf("%.6f", mean),
			"elapsed", elapsed.Round(time.Millisecond))
	}

	res, err := diffuse.Run(g, initial, &opts)
	if err != nil {
		return err
	}
	slog.Info("simulation complete",
		"steps", len(res.History),
		"elapsed", time.Since(start).Round(time.Millisecond))

	if err := ensureDir(cfg.History); err != nil {
		return err
	}
	if err := state.Save(cfg.History, res.History); err != nil {
		return err
	}
	if err := ensureDir(cfg.OutStates); err != nil {
		return err
	}
	if err := state.Save(cfg.OutStates, res.Final); err != nil {
		return err
	}
	slog.Info("wrote outputs", "history", cfg.History, "final_states", cfg.OutStates)

	return nil
}

// ensureDir creates the parent directory of path if needed.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	return nil
}
