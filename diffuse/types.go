// SPDX-License-Identifier: MIT
// Package: tonewave/diffuse
//
// types.go — options, result type and sentinel errors for the engine.
//
// Design contract (strict):
//   - All run parameters are explicit in Options; the engine keeps no
//     ambient state, no globals, no hidden defaults beyond DefaultOptions.
//   - Alpha outside [0,1] is REJECTED (ErrBadAlpha), never clamped: the
//     arithmetic is well-defined for any real alpha, but silent
//     extrapolation hides data errors, so out-of-range values must be an
//     explicit caller decision made before Run.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; implementations attach context via %w.

package diffuse

import "errors"

// Sentinel errors for driver validation.
var (
	// ErrGraphNil is returned when a nil graph pointer is passed.
	ErrGraphNil = errors.New("diffuse: graph is nil")

	// ErrDimensionMismatch is returned when the initial state vector
	// length differs from the graph node count.
	ErrDimensionMismatch = errors.New("diffuse: state length does not match node count")

	// ErrBadSteps is returned for a negative step count.
	ErrBadSteps = errors.New("diffuse: negative step count")

	// ErrBadAlpha is returned when the blend factor lies outside [0, 1].
	ErrBadAlpha = errors.New("diffuse: alpha out of range [0,1]")

	// ErrBadWorkers is returned for a negative worker count.
	ErrBadWorkers = errors.New("diffuse: negative worker count")

	// ErrBadStrategy is returned for an unknown execution strategy.
	ErrBadStrategy = errors.New("diffuse: unknown strategy")
)

// Strategy selects how a run partitions per-step work.
type Strategy int

const (
	// Sequential visits nodes 0..N-1 in index order on one goroutine.
	Sequential Strategy = iota
	// Parallel partitions the index range into contiguous blocks, one
	// per worker, with a full barrier between steps.
	Parallel
)

// String implements fmt.Stringer for log and error output.
func (s Strategy) String() string {
	switch s {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Default run parameters. Alpha follows the project's canonical blend
// weight; Steps matches the historical driver default.
const (
	DefaultSteps = 100
	DefaultAlpha = 0.25
)

// Options holds all parameters of one simulation run.
//
// Fields:
//   - Steps    — number of synchronous timesteps (≥ 0; 0 yields an empty
//     history and a final vector equal to the initial one).
//   - Alpha    — blend factor in [0, 1]: weight of neighbor influence
//     versus self-retention.
//   - Strategy — Sequential or Parallel.
//   - Workers  — worker count for Parallel only; 0 resolves to
//     runtime.GOMAXPROCS(0). Ignored by Sequential. The worker count
//     never changes the numerical model, only work partitioning.
//   - OnStep   — optional hook invoked after each completed step with
//     the zero-based step index and the recorded history mean. Runs on
//     the driver goroutine, after the step barrier.
type Options struct {
	Steps    int
	Alpha    float64
	Strategy Strategy
	Workers  int
	OnStep   func(step int, mean float64)
}

// DefaultOptions returns Options with sane defaults:
// Steps=100, Alpha=0.25, Sequential strategy, no hook.
func DefaultOptions() Options {
	return Options{
		Steps:    DefaultSteps,
		Alpha:    DefaultAlpha,
		Strategy: Sequential,
		Workers:  0,
		OnStep:   nil,
	}
}

// Result carries the outputs of one run. The caller is responsible for
// persisting them; the engine writes nothing itself.
type Result struct {
	// Final is the state vector after the last step.
	Final []float64
	// History holds the mean state after each completed step, one entry
	// per step, in step order.
	History []float64
}
