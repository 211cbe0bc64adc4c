package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tonewave/digraph"
	"github.com/katalvlaran/tonewave/ingest"
	"github.com/katalvlaran/tonewave/state"
)

// newBuildCmd wires data preparation: raw edge list + per-user scores →
// graph.txt, states.txt and the node_index.json mapping.
func newBuildCmd() *cobra.Command {
	var (
		edgelist  string
		perUser   string
		outGraph  string
		outStates string
		outIndex  string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build engine inputs from a raw edge list and per-user scores",
		Long: `Build reads a raw edge list whose endpoints use arbitrary IDs
(numeric IDs, handles, mixed), assigns dense zero-based indices in
first-seen order, and writes the engine's graph and states files plus a
JSON mapping from original IDs to indices.

Users missing from the scores CSV start at the neutral tone 0.0.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ef, err := os.Open(edgelist)
			if err != nil {
				return fmt.Errorf("open edge list: %w", err)
			}
			defer ef.Close()

			d, err := ingest.ReadEdgeList(ef)
			if err != nil {
				return err
			}
			slog.Info("read edge list", "nodes", d.N(), "edges", len(d.Edges))

			scores := map[string]float64{}
			if perUser != "" {
				sf, err := os.Open(perUser)
				if err != nil {
					return fmt.Errorf("open scores: %w", err)
				}
				defer sf.Close()
				if scores, err = ingest.ReadScoresCSV(sf); err != nil {
					return err
				}
				slog.Info("read per-user scores", "users", len(scores))
			} else {
				slog.Warn("no scores file given; all states start neutral")
			}

			if err := writeGraphFile(outGraph, d); err != nil {
				return err
			}
			if err := ensureDir(outStates); err != nil {
				return err
			}
			if err := state.Save(outStates, d.States(scores)); err != nil {
				return err
			}
			if err := writeIndexFile(outIndex, d); err != nil {
				return err
			}
			slog.Info("wrote engine inputs",
				"graph", outGraph, "states", outStates, "index", outIndex)

			return nil
		},
	}

	cmd.Flags().StringVar(&edgelist, "edgelist", "", "raw edge list (original IDs, u v per line)")
	cmd.Flags().StringVar(&perUser, "per-user", "", "CSV with user_id,sentiment columns")
	cmd.Flags().StringVar(&outGraph, "out-graph", "data/graph.txt", "graph output file")
	cmd.Flags().StringVar(&outStates, "out-states", "data/states.txt", "states output file")
	cmd.Flags().StringVar(&outIndex, "out-index", "data/node_index.json", "ID→index mapping output file")
	_ = cmd.MarkFlagRequired("edgelist")

	return cmd
}

// writeGraphFile renders a dataset's dense edges in the engine's flat
// format.
func writeGraphFile(path string, d *ingest.Dataset) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := writeEdges(f, d.N(), d.Edges); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

// writeIndexFile persists the original-ID → index mapping.
func writeIndexFile(path string, d *ingest.Dataset) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := d.WriteIndex(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// writeEdges emits the "N M" header followed by one edge per line.
func writeEdges(w io.Writer, n int, edges []digraph.Edge) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", n, len(edges)); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.U, e.V); err != nil {
			return err
		}
	}

	return bw.Flush()
}
