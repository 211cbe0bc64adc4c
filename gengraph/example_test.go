package gengraph_test

import (
	"fmt"

	"github.com/katalvlaran/tonewave/digraph"
	"github.com/katalvlaran/tonewave/gengraph"
)

// ExampleSmallWorld builds an unrewired ring lattice: with beta=0 the
// edge count is exactly n·k (both directions of every lattice pair).
func ExampleSmallWorld() {
	edges, _ := gengraph.SmallWorld(6, 2, 0)
	g, _ := digraph.FromEdges(6, edges)

	fmt.Println("nodes:", g.N(), "edges:", g.M())
	fmt.Println("preds of node 0:", g.InDegree(0))

	// Output:
	// nodes: 6 edges: 12
	// preds of node 0: 2
}
