package gravphys

import "math"

// Cosmology supplies the distance/time conversions the engine needs.
// Implementations must be pure: same input, same output. The GWB core
// treats cosmology as an external collaborator; FlatLCDM below is a
// compact implementation sufficient for tests and examples.
type Cosmology interface {
	// ComovingDistance returns the comoving distance [cm] to redshift z.
	ComovingDistance(redz float64) float64
	// DzDt returns dz/dt at redshift z [1/s]: H0·E(z)·(1+z)².
	DzDt(redz float64) float64
}

// FlatLCDM is a flat ΛCDM cosmology evaluated by fixed-step Simpson
// quadrature of the inverse Hubble function.
type FlatLCDM struct {
	// H0 is the Hubble constant [km/s/Mpc].
	H0 float64
	// OmegaM is the matter density parameter at z=0; the dark-energy
	// density is 1−OmegaM.
	OmegaM float64
}

// DefaultCosmology returns a FlatLCDM with Planck-2015-like parameters.
func DefaultCosmology() FlatLCDM {
	return FlatLCDM{H0: 67.74, OmegaM: 0.3089}
}

// simpsonPanels is the number of quadrature panels per distance
// integral; even, fixed for reproducibility.
const simpsonPanels = 256

// hubbleCGS returns H0 in [1/s].
func (c FlatLCDM) hubbleCGS() float64 {
	return c.H0 * 1e5 / MPC
}

// efunc returns E(z) = √(Ωm(1+z)³ + ΩΛ).
func (c FlatLCDM) efunc(redz float64) float64 {
	zp1 := 1.0 + redz

	return math.Sqrt(c.OmegaM*zp1*zp1*zp1 + (1.0 - c.OmegaM))
}

// ComovingDistance returns (c/H0)·∫₀^z dz'/E(z') [cm].
func (c FlatLCDM) ComovingDistance(redz float64) float64 {
	if redz <= 0 {
		return 0
	}
	h := redz / simpsonPanels
	sum := 1.0 + 1.0/c.efunc(redz)
	for i := 1; i < simpsonPanels; i++ {
		w := 2.0
		if i%2 == 1 {
			w = 4.0
		}
		sum += w / c.efunc(float64(i)*h)
	}
	integ := sum * h / 3.0

	return SPLC / c.hubbleCGS() * integ
}

// LuminosityDistance returns (1+z)·ComovingDistance(z) [cm].
func (c FlatLCDM) LuminosityDistance(redz float64) float64 {
	return (1.0 + redz) * c.ComovingDistance(redz)
}

// DzDt returns H0·E(z)·(1+z)² [1/s].
func (c FlatLCDM) DzDt(redz float64) float64 {
	zp1 := 1.0 + redz

	return c.hubbleCGS() * c.efunc(redz) * zp1 * zp1
}
