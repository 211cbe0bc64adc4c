// SPDX-License-Identifier: MIT
// Package: tonewave/gengraph
//
// options.go — functional options, resolved config and sentinel errors.

package gengraph

import "errors"

// Sentinel errors for generator validation.
var (
	// ErrTooFewNodes indicates n is below the generator's minimum.
	ErrTooFewNodes = errors.New("gengraph: too few nodes")

	// ErrBadProbability indicates a probability outside [0, 1].
	ErrBadProbability = errors.New("gengraph: probability out of range")

	// ErrBadDegree indicates an attachment or lattice degree that is
	// invalid for the requested node count.
	ErrBadDegree = errors.New("gengraph: degree out of range")
)

// DefaultSeed is the project's historical fixture seed.
const DefaultSeed = 42

// Option configures a generator via functional arguments.
type Option func(*config)

// config aggregates all generator knobs; passed by value, immutable to
// callers.
type config struct {
	seed int64
}

// newConfig resolves options in order over deterministic defaults.
func newConfig(opts ...Option) config {
	cfg := config{seed: DefaultSeed}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed freezes the generator's RNG for reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
