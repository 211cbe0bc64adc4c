package equiv

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for equivalence checks.
var (
	// ErrLengthMismatch is returned when the compared sequences have
	// different lengths.
	ErrLengthMismatch = errors.New("equiv: length mismatch")

	// ErrNotClose is returned when some element violates the tolerance
	// bound |a_i - b_i| <= atol + rtol*|b_i|.
	ErrNotClose = errors.New("equiv: sequences differ beyond tolerance")
)

// Default tolerances for cross-strategy comparisons: conservative, yet
// strict enough to catch any real divergence of the update rule.
const (
	DefaultAtol = 1e-7
	DefaultRtol = 1e-6
)

// Tolerance bounds an element-wise comparison.
type Tolerance struct {
	Atol float64 // absolute term
	Rtol float64 // relative term, scaled by |b_i|
}

// DefaultTolerance returns the documented default bounds.
func DefaultTolerance() Tolerance {
	return Tolerance{Atol: DefaultAtol, Rtol: DefaultRtol}
}

// Report summarizes a comparison, close or not.
type Report struct {
	// MaxAbsDiff is the maximum |a_i - b_i| over all elements.
	MaxAbsDiff float64
	// ArgMax is the index attaining MaxAbsDiff (-1 for empty input).
	ArgMax int
	// Len is the compared length.
	Len int
}

// Compare checks a against b element-wise under tol. The returned Report
// is valid whenever the lengths match, including on ErrNotClose, so
// callers can log the observed maximum difference.
func Compare(a, b []float64, tol Tolerance) (Report, error) {
	rep := Report{ArgMax: -1, Len: len(a)}
	if len(a) != len(b) {
		return rep, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	within := true
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > rep.MaxAbsDiff {
			rep.MaxAbsDiff = d
			rep.ArgMax = i
		}
		if d > tol.Atol+tol.Rtol*math.Abs(b[i]) {
			within = false
		}
	}
	if !within {
		return rep, fmt.Errorf("%w: max abs diff %g at index %d", ErrNotClose, rep.MaxAbsDiff, rep.ArgMax)
	}

	return rep, nil
}

// Close is a convenience predicate over Compare with default tolerances.
func Close(a, b []float64) bool {
	_, err := Compare(a, b, DefaultTolerance())

	return err == nil
}
