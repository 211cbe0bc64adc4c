// SPDX-License-Identifier: MIT
// Package: tonewave/diffuse
//
// Package diffuse implements the synchronous tone-diffusion engine: the
// per-step update kernel and the multi-step simulation driver with two
// execution strategies (sequential and partitioned-parallel).
//
// What:
//
//   - Step computes one synchronous timestep: every node blends its
//     current value with the mean of its predecessors' current values,
//     reading only finalized values from the previous step.
//   - Run applies Step a fixed number of times, recording the mean state
//     after each step (the history), and returns the final vector.
//   - Strategies: Sequential visits nodes 0..N-1 in index order on one
//     goroutine; Parallel partitions [0, N) into contiguous blocks, one
//     per worker, with a join-all barrier between steps.
//
// Numerical contract:
//
//   - Per-node summation order is the predecessor file order, identical
//     under every strategy, so final state vectors are bit-identical
//     across worker counts.
//   - The per-step history mean is reduced from per-worker partial sums
//     in worker order after the barrier; different worker counts may
//     therefore differ in the last bits of history entries, and agree
//     only within floating-point tolerance (see package equiv).
//   - The sequential strategy is bit-deterministic across re-runs.
//
// Concurrency:
//
//   - Double-buffered (ping-pong) state arrays; "current" is read-only
//     shared within a step, "next" is written in disjoint per-worker
//     blocks; sync.WaitGroup join is the full per-step barrier.
//   - No cancellation or timeout semantics: a run completes all steps or
//     fails fast on invalid input before the first step.
//
// Errors:
//
//   - ErrGraphNil: nil graph.
//   - ErrDimensionMismatch: initial vector length ≠ graph node count.
//   - ErrBadSteps: negative step count.
//   - ErrBadAlpha: blend factor outside [0, 1] (rejected, not clamped).
//   - ErrBadWorkers: negative worker count.
//   - ErrBadStrategy: unknown execution strategy.
//
// Complexity: O(steps × (N + M)) time; O(N) extra memory.
package diffuse
