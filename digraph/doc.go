// Package digraph provides the immutable directed graph the diffusion
// engine runs on, stored as predecessor (reverse-adjacency) lists for
// fast per-node inflow iteration.
//
// What:
//
//   - Digraph holds N dense zero-based nodes and M directed edges u→v
//     ("u influences v") in a compact CSR-style layout.
//   - Load/Read parse the flat text format: a "N M" header line followed
//     by one "u v" pair per line. Blank lines and '#' comments are
//     skipped anywhere in the file; M is advisory and not re-validated.
//   - FromEdges builds a graph programmatically from an edge slice.
//
// Semantics:
//
//   - Self-loops and parallel edges are permitted and NOT deduplicated;
//     each occurrence is a separate predecessor entry and contributes
//     independently to a node's inflow mean.
//   - Preds(v) returns predecessors in file (or input-slice) order. That
//     order is implementation-visible but not semantically significant:
//     the mean is order-independent analytically, while floating-point
//     summation order may perturb the last bits.
//   - The graph is write-once, read-many: no mutation after construction,
//     safe for unsynchronized concurrent reads.
//
// Complexity:
//
//   - Load/FromEdges: O(N+M) time, O(N+M) memory.
//   - Preds/InDegree: O(1) (slice header into shared backing array).
//
// Errors:
//
//   - ErrBadHeader: the first significant line is not two integers.
//   - ErrBadEdge: an edge line has fewer than two integer tokens.
//   - ErrEdgeRange: an edge endpoint falls outside [0, N).
package digraph
