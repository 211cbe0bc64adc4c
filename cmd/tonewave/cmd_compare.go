package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tonewave/equiv"
	"github.com/katalvlaran/tonewave/state"
)

// newCompareCmd wires the equivalence oracle over two history or
// final-state files produced by different strategies or worker counts.
func newCompareCmd() *cobra.Command {
	var (
		atol float64
		rtol float64
	)

	cmd := &cobra.Command{
		Use:   "compare <file-a> <file-b>",
		Short: "Compare two history or state files within tolerance",
		Long: `Compare reads two one-value-per-line files produced from identical
inputs by different execution strategies and checks element-wise
closeness |a-b| <= atol + rtol*|b|. Exits non-zero when the files
differ beyond tolerance, reporting the maximum absolute difference.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadSeries(args[0])
			if err != nil {
				return err
			}
			b, err := loadSeries(args[1])
			if err != nil {
				return err
			}

			rep, err := equiv.Compare(a, b, equiv.Tolerance{Atol: atol, Rtol: rtol})
			if err != nil {
				return err
			}
			slog.Info("sequences are equivalent",
				"len", rep.Len,
				"max_abs_diff", fmt.Sprintf("%g", rep.MaxAbsDiff))

			return nil
		},
	}

	cmd.Flags().Float64Var(&atol, "atol", equiv.DefaultAtol, "absolute tolerance")
	cmd.Flags().Float64Var(&rtol, "rtol", equiv.DefaultRtol, "relative tolerance")

	return cmd
}

// loadSeries reads a one-value-per-line file of unknown length.
func loadSeries(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	vals, err := state.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return vals, nil
}
