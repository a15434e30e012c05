package gravphys

import "math"

// ChirpMass returns the chirp mass [g] of a binary with component masses
// m1, m2 [g]:
//
//	ℳ = (m1·m2)^(3/5) / (m1+m2)^(1/5)
func ChirpMass(m1, m2 float64) float64 {
	return math.Pow(m1*m2, 3.0/5.0) / math.Pow(m1+m2, 1.0/5.0)
}

// GWStrainSource returns the sky- and polarization-averaged strain
// amplitude of a single circular binary with chirp mass mchirp [g] at
// luminosity distance dlum [cm], orbiting at rest-frame orbital
// frequency frstOrb [1/s].  Sesana+2004 Eq.36, EN07 Eq.17.
func GWStrainSource(mchirp, dlum, frstOrb float64) float64 {
	return gwSrcConst * mchirp * math.Pow(2.0*mchirp*frstOrb, 2.0/3.0) / dlum
}

// GWLumCirc returns the GW luminosity [erg/s] of a circular binary.
// EN07 Eq.2.2.
func GWLumCirc(mchirp, frstOrb float64) float64 {
	return gwLumConst * math.Pow(2.0*math.Pi*frstOrb*mchirp, 10.0/3.0)
}

// DfdtFromDadt converts a hardening rate in separation dadt [cm/s] into
// a hardening rate in orbital frequency [1/s²] via the derivative of the
// Kepler relation. frstOrb is the rest-frame orbital frequency at
// separation sepa. The auxiliary df/da term [1/s/cm] is returned
// alongside. Hardening (dadt < 0) yields dfdt > 0.
func DfdtFromDadt(dadt, sepa, frstOrb float64) (dfdt, dfda float64) {
	dfda = -(3.0 / 2.0) * (frstOrb / sepa)
	dfdt = dfda * dadt

	return dfdt, dfda
}

// GWHardeningDadt returns the GW-driven orbital decay rate da/dt [cm/s]
// of a binary, negative for hardening. Peters 1964 Eq.5.6; the
// eccentricity enhancement F(e) applies when eccen > 0.
func GWHardeningDadt(m1, m2, sepa, eccen float64) float64 {
	dadt := gwDadtSepConst * m1 * m2 * (m1 + m2) / math.Pow(sepa, 3.0)
	if eccen > 0 {
		dadt *= EccFunc(eccen)
	}

	return dadt
}

// GWHardeningDfdt returns the GW-driven hardening rate in rest-frame
// orbital frequency [1/s²] at frequency frstOrb, positive for a
// shrinking orbit.
func GWHardeningDfdt(m1, m2, frstOrb, eccen float64) float64 {
	sepa := KeplerSepaFromFreq(m1+m2, frstOrb)
	dadt := GWHardeningDadt(m1, m2, sepa, eccen)
	dfdt, _ := DfdtFromDadt(dadt, sepa, frstOrb)

	return dfdt
}

// GWDedt returns the GW-driven eccentricity decay rate de/dt [1/s],
// negative: GW emission always circularizes. Peters 1964 Eq.5.8.
func GWDedt(m1, m2, sepa, eccen float64) float64 {
	e2 := eccen * eccen
	dedt := gwDedtEccConst * m1 * m2 * (m1 + m2) / math.Pow(sepa, 4.0)
	dedt *= (1.0 + e2*121.0/304.0) * eccen / math.Pow(1.0-e2, 5.0/2.0)

	return dedt
}

// EccFunc returns the Peters F(e) enhancement of the GW hardening rate.
// Peters 1964 Eq.5.6, EN07 Eq.2.3.
func EccFunc(eccen float64) float64 {
	e2 := eccen * eccen
	num := 1.0 + (73.0/24.0)*e2 + (37.0/96.0)*e2*e2
	den := math.Pow(1.0-e2, 7.0/2.0)

	return num / den
}

// LambdaFactorDlnf returns the number of binaries per unit ln-frequency
// per unit comoving volume implied by the local hardening rate:
//
//	Λ = 4π·c·(1+z)·dcom²·frstOrb / dfdt
//
// frstOrb is the rest-frame orbital frequency [1/s], dfdt its hardening
// rate [1/s²], and dcom the comoving distance [cm]. A stalled binary
// (dfdt == 0) yields +Inf; callers must detect and exclude it.
func LambdaFactorDlnf(frstOrb, dfdt, redz, dcom float64) float64 {
	return 4.0 * math.Pi * SPLC * (1.0 + redz) * dcom * dcom * frstOrb / dfdt
}
