package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tonewave/digraph"
	"github.com/katalvlaran/tonewave/gengraph"
	"github.com/katalvlaran/tonewave/state"
)

// newGenCmd wires the synthetic generators: seeded benchmark graphs plus
// matching random initial states.
func newGenCmd() *cobra.Command {
	var (
		nodes     int
		model     string
		prob      float64
		degree    int
		beta      float64
		seed      int64
		outGraph  string
		outStates string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a synthetic benchmark graph and states",
		Long: `Gen produces a seeded synthetic social-influence graph in the
engine's flat format, together with random initial tones drawn from
Normal(0, 0.5) clipped to [-1, 1].

Models:
  sparse — Erdős–Rényi random pairs          (uses --prob)
  pref   — preferential attachment, hub-heavy (uses --degree)
  small  — small-world rewired ring lattice   (uses --degree, --beta)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				edges []digraph.Edge
				err   error
			)
			switch model {
			case "sparse":
				p := prob
				if p == 0 {
					p = 10.0 / float64(nodes) // default: avg degree ~10
				}
				edges, err = gengraph.Sparse(nodes, p, gengraph.WithSeed(seed))
			case "pref":
				edges, err = gengraph.Preferential(nodes, degree/2, gengraph.WithSeed(seed))
			case "small":
				edges, err = gengraph.SmallWorld(nodes, degree, beta, gengraph.WithSeed(seed))
			default:
				return fmt.Errorf("unknown model %q (want sparse, pref or small)", model)
			}
			if err != nil {
				return err
			}
			slog.Info("generated graph", "model", model, "nodes", nodes, "edges", len(edges))

			if err := ensureDir(outGraph); err != nil {
				return err
			}
			f, err := os.Create(outGraph)
			if err != nil {
				return fmt.Errorf("create %s: %w", outGraph, err)
			}
			if err := writeEdges(f, nodes, edges); err != nil {
				f.Close()
				return fmt.Errorf("write %s: %w", outGraph, err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", outGraph, err)
			}

			vals, err := gengraph.States(nodes, gengraph.WithSeed(seed))
			if err != nil {
				return err
			}
			if err := ensureDir(outStates); err != nil {
				return err
			}
			if err := state.Save(outStates, vals); err != nil {
				return err
			}
			slog.Info("wrote fixture", "graph", outGraph, "states", outStates, "seed", seed)

			return nil
		},
	}

	cmd.Flags().IntVar(&nodes, "nodes", 10_000, "number of nodes")
	cmd.Flags().StringVar(&model, "model", "pref", "graph model: sparse, pref or small")
	cmd.Flags().Float64Var(&prob, "prob", 0, "edge probability for sparse (0 = avg degree 10)")
	cmd.Flags().IntVar(&degree, "degree", 10, "average degree (pref, small)")
	cmd.Flags().Float64Var(&beta, "beta", 0.1, "rewiring probability for small")
	cmd.Flags().Int64Var(&seed, "seed", gengraph.DefaultSeed, "RNG seed")
	cmd.Flags().StringVar(&outGraph, "out-graph", "data/graph.txt", "graph output file")
	cmd.Flags().StringVar(&outStates, "out-states", "data/states.txt", "states output file")

	return cmd
}
