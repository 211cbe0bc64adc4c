// SPDX-License-Identifier: MIT
// Package: tonewave/gengraph
//
// gengraph.go — the generators themselves.
//
// Emission contract (strict):
//   - Undirected pairs are emitted as two directed edges, u→v then v→u.
//   - Edge order is a deterministic function of (parameters, seed); the
//     diffusion engine's predecessor order therefore is too.
//   - Generators never panic; all validation surfaces as sentinels.

package gengraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tonewave/digraph"
)

// Sparse generates an Erdős–Rényi-style graph over n nodes: every
// unordered pair {i, j} becomes a mutual influence with probability p.
// Complexity: O(n²) pair draws, deterministic per seed.
func Sparse(n int, p float64, opts ...Option) ([]digraph.Edge, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d, need at least 1", ErrTooFewNodes, n)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: p=%v", ErrBadProbability, p)
	}
	cfg := newConfig(opts...)
	rng := rand.New(rand.NewSource(cfg.seed))

	edges := make([]digraph.Edge, 0, int(p*float64(n)*float64(n-1)))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, digraph.Edge{U: i, V: j}, digraph.Edge{U: j, V: i})
			}
		}
	}

	return edges, nil
}

// Preferential generates a Barabási–Albert-style scale-free graph:
// nodes m..n-1 arrive one by one and attach to m distinct existing
// nodes, chosen proportionally to current degree (repeated-endpoint
// sampling). Requires 1 ≤ m < n.
// Complexity: O(n·m), deterministic per seed.
func Preferential(n, m int, opts ...Option) ([]digraph.Edge, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d, need at least 2", ErrTooFewNodes, n)
	}
	if m < 1 || m >= n {
		return nil, fmt.Errorf("%w: m=%d with n=%d, need 1 <= m < n", ErrBadDegree, m, n)
	}
	cfg := newConfig(opts...)
	rng := rand.New(rand.NewSource(cfg.seed))

	edges := make([]digraph.Edge, 0, 2*(n-m)*m)
	// repeated holds one entry per edge endpoint; drawing uniformly from
	// it is degree-proportional sampling.
	repeated := make([]int, 0, 2*(n-m)*m)
	targets := make([]int, m)
	for i := range targets {
		targets[i] = i // the first m nodes bootstrap the network
	}

	chosen := make(map[int]bool, m)
	for v := m; v < n; v++ {
		for _, u := range targets {
			edges = append(edges, digraph.Edge{U: v, V: u}, digraph.Edge{U: u, V: v})
			repeated = append(repeated, u, v)
		}
		// Draw the next m distinct targets for node v+1.
		clear(chosen)
		targets = targets[:0]
		for len(targets) < m {
			u := repeated[rng.Intn(len(repeated))]
			if chosen[u] {
				continue
			}
			chosen[u] = true
			targets = append(targets, u)
		}
	}

	return edges, nil
}

// SmallWorld generates a Watts–Strogatz-style graph: a ring lattice
// where each node meets its k nearest neighbors (k even, k < n), then
// each lattice edge's far endpoint is rewired with probability beta to a
// uniform node, avoiding self-loops and duplicate pairs.
// Complexity: O(n·k), deterministic per seed.
func SmallWorld(n, k int, beta float64, opts ...Option) ([]digraph.Edge, error) {
	if n < 3 {
		return nil, fmt.Errorf("%w: n=%d, need at least 3", ErrTooFewNodes, n)
	}
	if k < 2 || k%2 != 0 || k >= n {
		return nil, fmt.Errorf("%w: k=%d with n=%d, need even 2 <= k < n", ErrBadDegree, k, n)
	}
	if beta < 0 || beta > 1 {
		return nil, fmt.Errorf("%w: beta=%v", ErrBadProbability, beta)
	}
	cfg := newConfig(opts...)
	rng := rand.New(rand.NewSource(cfg.seed))

	type pair struct{ a, b int }
	seen := make(map[pair]bool, n*k/2)
	ordered := func(u, v int) pair {
		if u < v {
			return pair{u, v}
		}
		return pair{v, u}
	}

	edges := make([]digraph.Edge, 0, n*k)
	for i := 0; i < n; i++ {
		for off := 1; off <= k/2; off++ {
			j := (i + off) % n
			if rng.Float64() < beta {
				// Rewire with a bounded retry; keep the lattice edge if
				// no free endpoint turns up (dense corner case).
				for attempt := 0; attempt < n; attempt++ {
					cand := rng.Intn(n)
					if cand == i || seen[ordered(i, cand)] {
						continue
					}
					j = cand
					break
				}
			}
			pr := ordered(i, j)
			if seen[pr] {
				continue
			}
			seen[pr] = true
			edges = append(edges, digraph.Edge{U: i, V: j}, digraph.Edge{U: j, V: i})
		}
	}

	return edges, nil
}

// States draws n initial tones from Normal(0, 0.5) clipped to [-1, 1]:
// mostly neutral, tails at the conviction extremes.
// Deterministic per seed.
func States(n int, opts ...Option) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}
	cfg := newConfig(opts...)
	rng := rand.New(rand.NewSource(cfg.seed))

	vals := make([]float64, n)
	for i := range vals {
		v := rng.NormFloat64() * 0.5
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}
		vals[i] = v
	}

	return vals, nil
}
