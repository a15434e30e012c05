package realize_test

import (
	"math"
	"testing"

	"github.com/lvukan/gwback/realize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
)

func newSampler(limit float64, seed uint64) *realize.OccupationSampler {
	return realize.NewOccupationSampler(limit, rand.NewSource(seed))
}

// TestOccupationSampler_ZeroExpectation: λ=0 writes exact zeros and
// must not crash the draw.
func TestOccupationSampler_ZeroExpectation(t *testing.T) {
	s := newSampler(1e8, 1)
	out := []float64{7, 7, 7, 7}

	require.NoError(t, s.Draw(0, out))
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

// TestOccupationSampler_NegativeExpectation: negative (or NaN) λ is a
// fatal sign error, never floored.
func TestOccupationSampler_NegativeExpectation(t *testing.T) {
	s := newSampler(1e8, 1)
	out := make([]float64, 4)

	assert.ErrorIs(t, s.Draw(-0.5, out), realize.ErrNegativeOccupation)
	assert.ErrorIs(t, s.Draw(math.NaN(), out), realize.ErrNegativeOccupation)
}

// TestOccupationSampler_PoissonMean: for λ=5 and R=100000 the sample
// mean converges within ±5%.
func TestOccupationSampler_PoissonMean(t *testing.T) {
	s := newSampler(1e8, 42)
	out := make([]float64, 100000)

	require.NoError(t, s.Draw(5.0, out))

	assert.InEpsilon(t, 5.0, stat.Mean(out, nil), 0.05)
	assert.InEpsilon(t, 5.0, stat.Variance(out, nil), 0.05)

	// Poisson draws are integer counts.
	for _, v := range out[:100] {
		assert.Equal(t, math.Trunc(v), v)
	}
}

// TestOccupationSampler_SwitchContinuity: just below and just above the
// Poisson/Gaussian switch, mean and variance are statistically
// indistinguishable (both ≈ λ) — no discontinuity artifact.
func TestOccupationSampler_SwitchContinuity(t *testing.T) {
	const limit = 1000.0
	out := make([]float64, 200000)

	for _, lam := range []float64{limit * 0.995, limit * 1.005} {
		s := newSampler(limit, 7)
		require.NoError(t, s.Draw(lam, out))
		assert.InEpsilon(t, lam, stat.Mean(out, nil), 0.02, "mean at λ=%.1f", lam)
		assert.InEpsilon(t, lam, stat.Variance(out, nil), 0.05, "variance at λ=%.1f", lam)
	}
}

// TestOccupationSampler_GaussianClamped: the large-λ Gaussian draw never
// goes negative.
func TestOccupationSampler_GaussianClamped(t *testing.T) {
	// Force the Gaussian branch at a small λ where clipping actually
	// happens.
	s := newSampler(1.0, 3)
	out := make([]float64, 50000)

	require.NoError(t, s.Draw(2.0, out))
	for _, v := range out {
		require.GreaterOrEqual(t, v, 0.0)
	}
}

// TestOccupationSampler_Deterministic: same seed, same stream.
func TestOccupationSampler_Deterministic(t *testing.T) {
	a := newSampler(1e8, 99)
	b := newSampler(1e8, 99)
	outA := make([]float64, 1000)
	outB := make([]float64, 1000)

	require.NoError(t, a.Draw(3.7, outA))
	require.NoError(t, b.Draw(3.7, outB))
	assert.Equal(t, outA, outB)
}
