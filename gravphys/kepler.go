package gravphys

import "math"

// KeplerFreqFromSepa returns the rest-frame orbital frequency [1/s] of a
// binary with total mass mtot [g] at separation sepa [cm]:
//
//	f = (1/2π) · √(G·mtot) / sepa^(3/2)
func KeplerFreqFromSepa(mtot, sepa float64) float64 {
	return (1.0 / (2.0 * math.Pi)) * math.Sqrt(NWTG*mtot) / math.Pow(sepa, 1.5)
}

// KeplerSepaFromFreq returns the orbital separation [cm] of a binary with
// total mass mtot [g] orbiting at rest-frame frequency freq [1/s].
func KeplerSepaFromFreq(mtot, freq float64) float64 {
	tp := 2.0 * math.Pi * freq
	return math.Cbrt(NWTG * mtot / (tp * tp))
}

// ObservedOrbitalFreq returns the orbital frequency of a binary as seen
// by a distant observer, redshifted by (1+z).
func ObservedOrbitalFreq(mtot, sepa, redz float64) float64 {
	return KeplerFreqFromSepa(mtot, sepa) / (1.0 + redz)
}

// SchwarzschildRadius returns 2·G·mass/c² [cm].
func SchwarzschildRadius(mass float64) float64 {
	return SchwPerMass * mass
}

// RadISCO returns the innermost stable circular orbit of the combined
// system, factor × the Schwarzschild radius of the total mass. The
// conventional factor is 3.
func RadISCO(m1, m2, factor float64) float64 {
	return factor * SchwarzschildRadius(m1+m2)
}

// MtMrFromM1M2 converts component masses to (total mass, mass ratio),
// with the ratio defined ≤ 1.
func MtMrFromM1M2(m1, m2 float64) (mtot, mrat float64) {
	mtot = m1 + m2
	if m1 >= m2 {
		mrat = m2 / m1
	} else {
		mrat = m1 / m2
	}

	return mtot, mrat
}

// M1M2FromMtMr converts (total mass, mass ratio ≤ 1) back to component
// masses, with m1 the primary.
func M1M2FromMtMr(mtot, mrat float64) (m1, m2 float64) {
	m1 = mtot / (1.0 + mrat)
	m2 = mtot - m1

	return m1, m2
}

// NyquistFreqs returns the observed-frequency grid of a pulsar-timing
// style survey of duration dur [s] observed at cadence cad [s]: uniform
// steps of 1/dur from 1/dur up to 1/cad.
func NyquistFreqs(dur, cad float64) []float64 {
	fmin := 1.0 / dur
	fmax := 1.0 / cad
	var freqs []float64
	for f := fmin; f < fmax+fmin/10.0; f += fmin {
		freqs = append(freqs, f)
	}

	return freqs
}
