// Command tonewave is the launcher around the diffusion engine: it
// prepares inputs, runs simulations and compares results.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "tonewave",
		Short: "Emotional-tone diffusion over social-influence graphs",
		Long: `tonewave propagates a scalar emotional tone across a directed
social-influence graph with a synchronous iterative update rule.

It reads a flat graph file ("N M" header plus "u v" edge lines) and a
states file (one value per node), runs a fixed number of steps either
sequentially or across a worker pool, and writes the final states plus
the per-step mean history.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newBuildCmd(),
		newGenCmd(),
		newCompareCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("tonewave version %s\n", version)
		},
	}
}
