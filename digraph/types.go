// types.go — core types and sentinel errors for the
// predecessor-list graph.

package digraph

import "errors"

// Sentinel errors for graph construction and file parsing.
var (
	// ErrBadHeader is returned when the header line cannot be parsed as
	// two integers "N M".
	ErrBadHeader = errors.New("digraph: malformed header")

	// ErrBadEdge is returned when an edge line has fewer than two
	// whitespace-separated integer tokens.
	ErrBadEdge = errors.New("digraph: malformed edge line")

	// ErrEdgeRange is returned when an edge endpoint lies outside [0, N).
	ErrEdgeRange = errors.New("digraph: edge endpoint out of range")
)

// Edge is a single directed influence edge u→v ("u influences v").
type Edge struct {
	U, V int
}

// Digraph is an immutable directed graph over nodes 0..N-1, stored as
// predecessor lists in CSR form: the predecessors of node v occupy
// preds[offsets[v]:offsets[v+1]], in input order.
//
// A zero Digraph is a valid empty graph (N == 0, M == 0).
type Digraph struct {
	n       int
	offsets []int // len n+1; offsets[v+1]-offsets[v] = in-degree of v
	preds   []int // len m; concatenated predecessor lists
}

// N returns the number of nodes.
func (g *Digraph) N() int { return g.n }

// M returns the number of edges actually loaded (not the advisory header
// count).
func (g *Digraph) M() int { return len(g.preds) }

// InDegree returns the number of predecessor entries of v, counting
// parallel edges separately.
func (g *Digraph) InDegree(v int) int {
	return g.offsets[v+1] - g.offsets[v]
}

// Preds returns the predecessors of v in input order. The returned slice
// aliases the graph's backing array and must not be modified.
func (g *Digraph) Preds(v int) []int {
	return g.preds[g.offsets[v]:g.offsets[v+1]]
}
