package gravphys_test

import (
	"math"
	"testing"

	"github.com/lvukan/gwback/gravphys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freqDistDirect evaluates g(n,e) with every Bessel order computed
// directly by math.Jn, without the recursion used in the library.
func freqDistDirect(n int, eccen float64) float64 {
	nn := float64(n)
	ne := nn * eccen
	n2 := nn * nn

	jnM2 := math.Jn(n-2, ne)
	jnM1 := math.Jn(n-1, ne)
	jn := math.Jn(n, ne)
	jnP1 := math.Jn(n+1, ne)
	jnP2 := math.Jn(n+2, ne)

	aa := jnM2 - 2.0*eccen*jnM1 + (2.0/nn)*jn + 2.0*eccen*jnP1 - jnP2
	aa *= aa
	bb := jnM2 - 2.0*eccen*jn + jnP2
	bb = (1.0 - eccen*eccen) * bb * bb
	cc := (4.0 / (3.0 * n2)) * jn * jn

	return (n2 * n2 / 32.0) * (aa + bb + cc)
}

// TestFreqDistFunc_RecursionMatchesDirect verifies the recursion form
// against direct Bessel evaluation across harmonics and eccentricities.
func TestFreqDistFunc_RecursionMatchesDirect(t *testing.T) {
	for _, ecc := range []float64{0.1, 0.3, 0.5, 0.9} {
		for n := 1; n <= 20; n++ {
			got := gravphys.FreqDistFunc(n, ecc)
			want := freqDistDirect(n, ecc)
			require.InDelta(t, want, got, 1e-9*math.Max(1.0, want),
				"g(n=%d, e=%.1f) recursion vs direct", n, ecc)
		}
	}
}

// TestFreqDistFunc_CircularLimit verifies g(2,e)→1 and all other
// harmonics vanish as e→0.
func TestFreqDistFunc_CircularLimit(t *testing.T) {
	assert.InDelta(t, 1.0, gravphys.FreqDistFunc(2, 1e-3), 1e-2,
		"n=2 must carry all power in the circular limit")
	assert.InDelta(t, 0.0, gravphys.FreqDistFunc(1, 1e-3), 1e-2)
	assert.InDelta(t, 0.0, gravphys.FreqDistFunc(3, 1e-3), 1e-2)
	assert.InDelta(t, 0.0, gravphys.FreqDistFunc(4, 1e-3), 1e-2)
}

// TestFreqDistFunc_SumEqualsEccFunc verifies Σ_n g(n,e) = F(e): the
// harmonic distribution must conserve the total Peters power
// enhancement.
func TestFreqDistFunc_SumEqualsEccFunc(t *testing.T) {
	for _, ecc := range []float64{0.2, 0.5, 0.7} {
		sum := 0.0
		for n := 1; n <= 300; n++ {
			sum += gravphys.FreqDistFunc(n, ecc)
		}
		assert.InEpsilon(t, gravphys.EccFunc(ecc), sum, 1e-2,
			"harmonic sum must reproduce F(e=%.1f)", ecc)
	}
}

// TestFreqDistFunc_NonNegative: g is a power fraction.
func TestFreqDistFunc_NonNegative(t *testing.T) {
	for n := 1; n <= 50; n++ {
		assert.GreaterOrEqual(t, gravphys.FreqDistFunc(n, 0.6), 0.0, "n=%d", n)
	}
}
