package equiv_test

import (
	"testing"

	"github.com/katalvlaran/tonewave/equiv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompare_IdenticalAndNearby accepts exact equality and sub-tolerance
// perturbations.
func TestCompare_IdenticalAndNearby(t *testing.T) {
	a := []float64{0.0125, -0.325, 0.375}

	rep, err := equiv.Compare(a, a, equiv.DefaultTolerance())
	require.NoError(t, err)
	assert.Zero(t, rep.MaxAbsDiff)

	b := []float64{0.0125 + 5e-8, -0.325, 0.375 - 5e-8}
	rep, err = equiv.Compare(a, b, equiv.DefaultTolerance())
	require.NoError(t, err)
	assert.InDelta(t, 5e-8, rep.MaxAbsDiff, 1e-12)
	assert.Equal(t, 3, rep.Len)
}

// TestCompare_RelativeTerm verifies the rtol*|b_i| slack scales with
// magnitude: a 5e-5 gap passes at |b|=100 but fails at |b|=1e-3.
func TestCompare_RelativeTerm(t *testing.T) {
	tol := equiv.DefaultTolerance()

	_, err := equiv.Compare([]float64{100.00005}, []float64{100.0}, tol)
	assert.NoError(t, err)

	_, err = equiv.Compare([]float64{0.00105}, []float64{0.001}, tol)
	assert.ErrorIs(t, err, equiv.ErrNotClose)
}

// TestCompare_NotClose reports the maximum absolute difference and its
// index for diagnosis.
func TestCompare_NotClose(t *testing.T) {
	a := []float64{0.1, 0.2, 0.9}
	b := []float64{0.1, 0.2, 0.3}

	rep, err := equiv.Compare(a, b, equiv.DefaultTolerance())
	require.ErrorIs(t, err, equiv.ErrNotClose)
	assert.InDelta(t, 0.6, rep.MaxAbsDiff, 1e-12)
	assert.Equal(t, 2, rep.ArgMax)
	assert.Contains(t, err.Error(), "index 2")
}

// TestCompare_LengthMismatch never inspects elements.
func TestCompare_LengthMismatch(t *testing.T) {
	_, err := equiv.Compare([]float64{1}, []float64{1, 2}, equiv.DefaultTolerance())
	assert.ErrorIs(t, err, equiv.ErrLengthMismatch)
}

// TestCompare_Empty treats two empty sequences as trivially close.
func TestCompare_Empty(t *testing.T) {
	rep, err := equiv.Compare(nil, nil, equiv.DefaultTolerance())
	require.NoError(t, err)
	assert.Equal(t, -1, rep.ArgMax)
	assert.Zero(t, rep.Len)
}

// TestClose is the convenience wrapper over default tolerances.
func TestClose(t *testing.T) {
	assert.True(t, equiv.Close([]float64{1, 2}, []float64{1, 2 + 1e-8}))
	assert.False(t, equiv.Close([]float64{1}, []float64{1.1}))
}
