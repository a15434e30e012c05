package gravphys

import "math"

// Physical constants in cgs units (cm, g, s).
const (
	// NWTG is Newton's gravitational constant [cm^3 / g / s^2].
	NWTG = 6.6743e-8
	// SPLC is the speed of light [cm / s].
	SPLC = 2.99792458e10
	// MSOL is the solar mass [g].
	MSOL = 1.988409871e33
	// PC is one parsec [cm].
	PC = 3.08567758149e18
	// KPC is one kiloparsec [cm].
	KPC = 1e3 * PC
	// MPC is one megaparsec [cm].
	MPC = 1e6 * PC
	// YR is one Julian year [s].
	YR = 365.25 * 24 * 3600

	// SchwPerMass is the Schwarzschild radius per unit mass, 2G/c^2 [cm / g].
	SchwPerMass = 2 * NWTG / (SPLC * SPLC)
)

// Derived GW constants. Values match the standard references up to
// floating-point order of operations.
var (
	// gwSrcConst prefixes the sky- and polarization-averaged strain of a
	// circular binary: 8 G^(5/3) π^(2/3) / (√10 c^4).  Sesana+2004 Eq.36.
	gwSrcConst = 8.0 * math.Pow(NWTG, 5.0/3.0) * math.Pow(math.Pi, 2.0/3.0) /
		math.Sqrt(10.0) / math.Pow(SPLC, 4.0)

	// gwDadtSepConst prefixes the Peters hardening rate in separation:
	// -64 G^3 / (5 c^5).  Peters 1964 Eq.5.6.
	gwDadtSepConst = -64.0 * math.Pow(NWTG, 3.0) / 5.0 / math.Pow(SPLC, 5.0)

	// gwDedtEccConst prefixes the Peters eccentricity decay rate:
	// -304 G^3 / (15 c^5).  Peters 1964 Eq.5.8.
	gwDedtEccConst = -304.0 * math.Pow(NWTG, 3.0) / 15.0 / math.Pow(SPLC, 5.0)

	// gwLumConst prefixes the GW luminosity of a circular binary:
	// (32/5) G^(7/3) c^-5.  Enoki & Nagashima 2007 Eq.2.2.
	gwLumConst = (32.0 / 5.0) * math.Pow(NWTG, 7.0/3.0) * math.Pow(SPLC, -5.0)
)
