// Package gravphys provides the closed-form Kepler and gravitational-wave
// relations underlying the GWB engine, in cgs units.
//
// Covered here:
//   - Kepler conversions between orbital separation and rest-frame
//     orbital frequency, plus the observer-frame frequency at redshift z
//   - chirp mass, single-source GW strain and GW luminosity
//     (Sesana+2004 Eq.36; Enoki & Nagashima 2007 Eq.2.2/17)
//   - hardening-rate conversions da/dt → df/dt, and the Peters (1964)
//     GW-driven hardening and eccentricity-decay rates
//   - the harmonic power distribution g(n,e) of an eccentric binary
//     (Enoki & Nagashima 2007 Eq.2.4, via a Bessel recursion)
//   - the lambda factor: number of binaries per unit ln-frequency per
//     unit comoving volume implied by the local hardening rate
//   - the Cosmology interface (distance/time conversions are supplied by
//     the caller; FlatLCDM is a compact built-in for tests and examples)
//
// Every function is pure and operates on float64 scalars. None of them
// validate their inputs: non-positive masses or separations produce
// NaN/Inf, and guarding against those is the caller's responsibility.
package gravphys
