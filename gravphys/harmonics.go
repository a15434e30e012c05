package gravphys

import "math"

// FreqDistFunc returns g(n,e): the fraction of total GW power an
// eccentric binary radiates into the n-th harmonic of its orbital
// frequency. EN07 Eq.2.4, evaluated with the Bessel recursion
//
//	J_{n+1}(x) = (2n/x)·J_n(x) − J_{n−1}(x)
//
// seeded from J_{n−2} and J_{n−1}. The recursion divides by n·e, so the
// circular limit must be handled by the caller: for e below a small
// cutoff treat the binary as circular — all power in n=2, zero in every
// other harmonic (see realize.Options.EccenCutoff).
func FreqDistFunc(n int, eccen float64) float64 {
	nn := float64(n)
	ne := nn * eccen
	n2 := nn * nn

	jnM2 := math.Jn(n-2, ne)
	jnM1 := math.Jn(n-1, ne)
	jn := (2.0*(nn-1.0)/ne)*jnM1 - jnM2
	jnP1 := (2.0*nn/ne)*jn - jnM1
	jnP2 := (2.0*(nn+1.0)/ne)*jnP1 - jn

	aa := jnM2 - 2.0*eccen*jnM1 + (2.0/nn)*jn + 2.0*eccen*jnP1 - jnP2
	aa *= aa
	bb := jnM2 - 2.0*eccen*jn + jnP2
	bb = (1.0 - eccen*eccen) * bb * bb
	cc := (4.0 / (3.0 * n2)) * jn * jn

	return (n2 * n2 / 32.0) * (aa + bb + cc)
}
