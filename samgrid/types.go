package samgrid

import "github.com/lvukan/gwback/realize"

// DensityGrid tabulates d³N/(dlog₁₀M dq dz) — the comoving number of
// merging binaries per unit log₁₀ total mass [g], mass ratio and
// redshift — at the corners of a rectilinear grid.
//
// LogM, Mrat and Redz are the axis edges (each strictly increasing,
// length ≥ 2). Dens holds the corner values, indexed
// Dens[iLogM][iMrat][iRedz], so its dimensions equal the edge lengths.
type DensityGrid struct {
	LogM []float64
	Mrat []float64
	Redz []float64
	Dens [][][]float64
}

// Validate checks edge ordering and density shape.
func (g *DensityGrid) Validate() error {
	for _, edges := range [][]float64{g.LogM, g.Mrat, g.Redz} {
		if len(edges) < 2 {
			return ErrEdgeOrder
		}
		for i := 1; i < len(edges); i++ {
			if edges[i] <= edges[i-1] {
				return ErrEdgeOrder
			}
		}
	}

	if len(g.Dens) != len(g.LogM) {
		return ErrGridShape
	}
	for _, plane := range g.Dens {
		if len(plane) != len(g.Mrat) {
			return ErrGridShape
		}
		for _, row := range plane {
			if len(row) != len(g.Redz) {
				return ErrGridShape
			}
		}
	}

	return nil
}

// cells returns the number of grid cells per axis.
func (g *DensityGrid) cells() (nm, nq, nz int) {
	return len(g.LogM) - 1, len(g.Mrat) - 1, len(g.Redz) - 1
}

// DefaultOutlierLimit is the canonical occupation threshold below which
// SampleOutliers treats a cell stochastically.
const DefaultOutlierLimit = 10.0

// Options configures the grid pathways.
//
//   - Eccen        — the (uniform) orbital eccentricity assigned to the
//     population; below Realize.EccenCutoff the binaries are circular.
//   - Harmonics    — orbital-frequency harmonics to evaluate; defaults
//     to {2}.
//   - OutlierLimit — SampleOutliers draws cells with expected occupation
//     at or below this value and integrates the rest analytically.
//   - Realize      — sampler configuration (NReals, PoissonLimit,
//     EccenCutoff, Seed, Workers, Logger). BoxVolume is not used: grid
//     densities are already all-sky comoving counts.
type Options struct {
	Eccen        float64
	Harmonics    []int
	OutlierLimit float64
	Realize      realize.Options
}

// DefaultOptions returns the canonical circular-population configuration.
func DefaultOptions() Options {
	return Options{
		Harmonics:    []int{2},
		OutlierLimit: DefaultOutlierLimit,
		Realize:      realize.DefaultOptions(),
	}
}

// Spectrum is an analytic grid-pathway output: the expectation spectrum
// and summed occupation per (frequency bin, harmonic).
type Spectrum struct {
	Expect     [][]float64
	Occupation [][]float64
}
