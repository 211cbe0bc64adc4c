// SPDX-License-Identifier: MIT
// Package: tonewave/diffuse
//
// kernel.go — the synchronous per-step update rule.

package diffuse

import (
	"fmt"

	"github.com/katalvlaran/tonewave/digraph"
)

// Step computes one synchronous diffusion step and returns a freshly
// allocated next vector; cur is never aliased or modified, so every
// node's update reads only finalized values from the previous step.
//
// For each node v:
//   - empty predecessor list: next[v] = cur[v] (static fixed point);
//   - otherwise: next[v] = (1-alpha)*cur[v] + alpha*(sum/count) over the
//     possibly repeated predecessor list, summed in predecessor order.
//
// Returns ErrGraphNil, ErrDimensionMismatch or ErrBadAlpha on invalid
// input. Complexity: O(N+M).
func Step(g *digraph.Digraph, cur []float64, alpha float64) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if len(cur) != g.N() {
		return nil, fmt.Errorf("%w: %d states, %d nodes", ErrDimensionMismatch, len(cur), g.N())
	}
	if alpha < 0 || alpha > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadAlpha, alpha)
	}

	next := make([]float64, len(cur))
	stepRange(g, cur, next, alpha, 0, g.N())

	return next, nil
}

// stepRange applies the update rule to nodes [lo, hi), writing next[v]
// for exactly that block and returning the partial sum of the written
// values (for the post-barrier history reduction). cur is read-only;
// callers guarantee disjoint [lo, hi) blocks per concurrent writer.
func stepRange(g *digraph.Digraph, cur, next []float64, alpha float64, lo, hi int) float64 {
	partial := 0.0
	for v := lo; v < hi; v++ {
		preds := g.Preds(v)
		if len(preds) == 0 {
			next[v] = cur[v]
		} else {
			sum := 0.0
			for _, u := range preds {
				sum += cur[u]
			}
			next[v] = (1-alpha)*cur[v] + alpha*(sum/float64(len(preds)))
		}
		partial += next[v]
	}

	return partial
}
