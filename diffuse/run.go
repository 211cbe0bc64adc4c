// SPDX-License-Identifier: MIT
// Package: tonewave/diffuse
//
// run.go — the multi-step simulation driver (both strategies).
//
// Design contract (strict):
//   - Validation happens entirely before the first step; once a valid
//     run begins there are no runtime errors; NaN/Inf inputs propagate
//     silently through the arithmetic.
//   - The driver owns two internal buffers and ping-pongs between them;
//     the caller's initial vector is copied, never mutated.
//   - Parallel: contiguous block per worker, sync.WaitGroup join as the
//     full per-step barrier; no worker reads next before every worker
//     finished writing it.
//   - History reduction: per-worker partial sums combined in worker
//     order after the barrier. Deterministic for a fixed worker count;
//     across worker counts only tolerance-equal.

package diffuse

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/tonewave/digraph"
)

// Run executes opts.Steps synchronous diffusion steps over g starting
// from initial, and returns the final state vector together with the
// per-step history of mean states. A nil opts runs DefaultOptions.
//
// The initial vector is copied; callers may reuse it freely. Termination
// is purely the step count — the Converged diagnostic in package state
// is deliberately not consulted here.
func Run(g *digraph.Digraph, initial []float64, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	workers, err := validate(g, initial, &o)
	if err != nil {
		return nil, err
	}

	n := g.N()
	cur := make([]float64, n)
	copy(cur, initial)
	next := make([]float64, n)
	history := make([]float64, 0, o.Steps)

	if o.Strategy == Sequential || workers == 1 {
		cur, history = runSequential(g, cur, next, history, &o)
	} else {
		cur, history = runParallel(g, cur, next, history, &o, workers)
	}

	return &Result{Final: cur, History: history}, nil
}

// validate enforces the parameter contract and resolves the effective
// worker count.
func validate(g *digraph.Digraph, initial []float64, o *Options) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if len(initial) != g.N() {
		return 0, fmt.Errorf("%w: %d states, %d nodes", ErrDimensionMismatch, len(initial), g.N())
	}
	if o.Steps < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSteps, o.Steps)
	}
	if o.Alpha < 0 || o.Alpha > 1 {
		return 0, fmt.Errorf("%w: %v", ErrBadAlpha, o.Alpha)
	}
	if o.Workers < 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadWorkers, o.Workers)
	}
	switch o.Strategy {
	case Sequential:
		return 1, nil
	case Parallel:
		workers := o.Workers
		if workers == 0 {
			workers = runtime.GOMAXPROCS(0)
		}
		if n := g.N(); workers > n && n > 0 {
			workers = n // never more blocks than nodes
		}

		return workers, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrBadStrategy, int(o.Strategy))
	}
}

// runSequential advances cur/next for o.Steps steps, visiting nodes in
// index order, and returns the live buffer plus the history.
func runSequential(g *digraph.Digraph, cur, next, history []float64, o *Options) ([]float64, []float64) {
	n := g.N()
	for t := 0; t < o.Steps; t++ {
		total := stepRange(g, cur, next, o.Alpha, 0, n)
		cur, next = next, cur
		mean := 0.0
		if n > 0 {
			mean = total / float64(n)
		}
		history = append(history, mean)
		if o.OnStep != nil {
			o.OnStep(t, mean)
		}
	}

	return cur, history
}

// runParallel advances cur/next with a fixed static partition of [0, N)
// into contiguous blocks, one per worker. Workers are re-joined every
// step; the WaitGroup wait is the barrier that keeps the synchronous
// update rule intact.
func runParallel(g *digraph.Digraph, cur, next, history []float64, o *Options, workers int) ([]float64, []float64) {
	n := g.N()
	partials := make([]float64, workers)

	var wg sync.WaitGroup
	for t := 0; t < o.Steps; t++ {
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			lo, hi := blockBounds(n, workers, w)
			go func(w, lo, hi int, cur, next []float64) {
				defer wg.Done()
				partials[w] = stepRange(g, cur, next, o.Alpha, lo, hi)
			}(w, lo, hi, cur, next)
		}
		wg.Wait() // barrier: next is fully materialized

		cur, next = next, cur
		total := 0.0
		for _, p := range partials { // worker-order reduction
			total += p
		}
		mean := 0.0
		if n > 0 {
			mean = total / float64(n)
		}
		history = append(history, mean)
		if o.OnStep != nil {
			o.OnStep(t, mean)
		}
	}

	return cur, history
}

// blockBounds returns the contiguous [lo, hi) node range of worker w
// under a static split of n nodes across the given worker count.
func blockBounds(n, workers, w int) (lo, hi int) {
	lo = n * w / workers
	hi = n * (w + 1) / workers

	return lo, hi
}
