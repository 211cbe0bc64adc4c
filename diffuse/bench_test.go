package diffuse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tonewave/diffuse"
	"github.com/katalvlaran/tonewave/digraph"
	"github.com/katalvlaran/tonewave/gengraph"
)

// benchGraph builds a seeded 20k-node sparse graph (~avg degree 10 both
// directions) for driver benchmarks.
func benchGraph(b *testing.B) (*digraph.Digraph, []float64) {
	b.Helper()
	const n = 20_000
	edges, err := gengraph.Sparse(n, 10.0/float64(n), gengraph.WithSeed(42))
	if err != nil {
		b.Fatalf("Sparse failed: %v", err)
	}
	g, err := digraph.FromEdges(n, edges)
	if err != nil {
		b.Fatalf("FromEdges failed: %v", err)
	}
	initial, err := gengraph.States(n, gengraph.WithSeed(42))
	if err != nil {
		b.Fatalf("States failed: %v", err)
	}

	return g, initial
}

// BenchmarkRun_Sequential measures the single-threaded driver.
// Complexity per op: O(steps × (N+M))
func BenchmarkRun_Sequential(b *testing.B) {
	g, initial := benchGraph(b)
	opts := diffuse.DefaultOptions()
	opts.Steps = 10

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := diffuse.Run(g, initial, &opts); err != nil {
			b.Fatalf("Run failed: %v", err)
		}
	}
}

// BenchmarkRun_Parallel sweeps worker counts to expose the speed-up
// curve of the partitioned strategy.
func BenchmarkRun_Parallel(b *testing.B) {
	g, initial := benchGraph(b)

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			opts := diffuse.DefaultOptions()
			opts.Steps = 10
			opts.Strategy = diffuse.Parallel
			opts.Workers = workers

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := diffuse.Run(g, initial, &opts); err != nil {
					b.Fatalf("Run failed: %v", err)
				}
			}
		})
	}
}

// BenchmarkStep isolates one kernel application.
func BenchmarkStep(b *testing.B) {
	g, initial := benchGraph(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := diffuse.Step(g, initial, diffuse.DefaultAlpha); err != nil {
			b.Fatalf("Step failed: %v", err)
		}
	}
}
