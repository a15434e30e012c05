package samgrid

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/lvukan/gwback/gravphys"
	"github.com/lvukan/gwback/realize"
)

// gridCell is a density-weighted centroid binary standing in for every
// binary of one grid cell.
type gridCell struct {
	count  float64
	m1, m2 float64
	mchirp float64
	redz   float64
	dzdt   float64
	dlum   float64
}

// buildCells collapses the grid into centroid binaries. A cell with a
// negative integrated count is a sign error in the input densities.
func buildCells(g *DensityGrid, cosmo gravphys.Cosmology) ([]gridCell, error) {
	centroids := g.Centroids()
	cells := make([]gridCell, 0, len(centroids))
	for ci, cen := range centroids {
		if cen.Count < 0 {
			return nil, fmt.Errorf("%w: cell %d", realize.ErrNegativeOccupation, ci)
		}
		if cen.Count == 0 {
			continue
		}

		mtot := math.Pow(10.0, cen.LogM)
		m1, m2 := gravphys.M1M2FromMtMr(mtot, cen.Mrat)

		cells = append(cells, gridCell{
			count:  cen.Count,
			m1:     m1,
			m2:     m2,
			mchirp: gravphys.ChirpMass(m1, m2),
			redz:   cen.Redz,
			dzdt:   cosmo.DzDt(cen.Redz),
			dlum:   (1.0 + cen.Redz) * cosmo.ComovingDistance(cen.Redz),
		})
	}

	return cells, nil
}

// cellBand returns the expected occupation and the single-binary
// strain² coefficient of one centroid binary in one (frequency bin,
// harmonic) band. Occupation follows from the residence time of the
// hardening binary in the bin's ln-width; a stalled binary yields a
// non-finite occupation, which the pathways exclude.
func cellBand(c gridCell, fcent, dlnf, eccen, gne float64, harm int) (num, coef float64) {
	n := float64(harm)
	frst := fcent * (1.0 + c.redz) / n

	dfdt := gravphys.GWHardeningDfdt(c.m1, c.m2, frst, eccen)
	num = c.count * c.dzdt * (frst / dfdt) * dlnf

	hs := gravphys.GWStrainSource(c.mchirp, c.dlum, frst)
	coef = hs * hs * gne * (2.0 / n) * (2.0 / n) / dlnf

	return num, coef
}

// harmonicWeights evaluates g(n,e) per requested harmonic under the
// circular cutoff: below the cutoff only n=2 radiates, with unit
// weight. A non-positive weight disables the harmonic.
func harmonicWeights(harmonics []int, eccen, cutoff float64) []float64 {
	weights := make([]float64, len(harmonics))
	for h, n := range harmonics {
		switch {
		case eccen < cutoff && n == 2:
			weights[h] = 1.0
		case eccen >= cutoff:
			weights[h] = gravphys.FreqDistFunc(n, eccen)
		}
	}

	return weights
}

func (o Options) normalized() Options {
	if len(o.Harmonics) == 0 {
		o.Harmonics = []int{2}
	}
	if o.OutlierLimit <= 0 {
		o.OutlierLimit = DefaultOutlierLimit
	}

	return o
}

// IntegrateDirect computes the analytic expectation spectrum of the
// grid population: per (frequency bin, harmonic), the sum over cells of
// occupation × strain². No randomness is involved; this is the
// reference the stochastic pathways must reproduce in the mean.
func IntegrateDirect(
	grid *DensityGrid,
	bins realize.FreqBins,
	cosmo gravphys.Cosmology,
	opts Options,
) (*Spectrum, error) {
	opts = opts.normalized()
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if cosmo == nil {
		return nil, realize.ErrNoCosmology
	}
	cells, err := buildCells(grid, cosmo)
	if err != nil {
		return nil, err
	}

	weights := harmonicWeights(opts.Harmonics, opts.Eccen, normalizedCutoff(opts))
	spec := &Spectrum{
		Expect:     zeroMatrix(bins.N(), len(opts.Harmonics)),
		Occupation: zeroMatrix(bins.N(), len(opts.Harmonics)),
	}
	for f := 0; f < bins.N(); f++ {
		for h, harm := range opts.Harmonics {
			if weights[h] <= 0 {
				continue
			}
			for _, c := range cells {
				num, coef := cellBand(c, bins.Centers[f], bins.DlnF[f], opts.Eccen, weights[h], harm)
				if math.IsInf(num, 0) || math.IsNaN(num) {
					continue
				}
				spec.Occupation[f][h] += num
				spec.Expect[f][h] += num * coef
			}
		}
	}

	return spec, nil
}

// RealizeDiscrete draws every cell's occupation stochastically,
// producing NReals realizations of the strain² cube. Cells are drawn in
// grid order from one substream per frequency bin, so the output is
// identical for any Options.Realize.Workers value.
func RealizeDiscrete(
	grid *DensityGrid,
	bins realize.FreqBins,
	cosmo gravphys.Cosmology,
	opts Options,
) (*realize.Cube, error) {
	return realizeGrid(grid, bins, cosmo, opts, math.Inf(1))
}

// SampleOutliers is the hybrid pathway: cells whose expected occupation
// in a band is at or below Options.OutlierLimit are drawn
// stochastically, the remainder contributes its expectation directly to
// every realization.
func SampleOutliers(
	grid *DensityGrid,
	bins realize.FreqBins,
	cosmo gravphys.Cosmology,
	opts Options,
) (*realize.Cube, error) {
	opts = opts.normalized()

	return realizeGrid(grid, bins, cosmo, opts, opts.OutlierLimit)
}

// realizeGrid draws cells with expected occupation ≤ drawLimit and adds
// the rest analytically.
func realizeGrid(
	grid *DensityGrid,
	bins realize.FreqBins,
	cosmo gravphys.Cosmology,
	opts Options,
	drawLimit float64,
) (*realize.Cube, error) {
	opts = opts.normalized()
	ropts := opts.Realize
	if ropts.NReals < 1 {
		return nil, realize.ErrNoRealizations
	}
	if cosmo == nil {
		return nil, realize.ErrNoCosmology
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	cells, err := buildCells(grid, cosmo)
	if err != nil {
		return nil, err
	}

	weights := harmonicWeights(opts.Harmonics, opts.Eccen, normalizedCutoff(opts))
	cube := realize.NewCube(bins.N(), len(opts.Harmonics), ropts.NReals)

	workers := ropts.Workers
	if workers < 1 {
		workers = 1
	}
	limit := ropts.PoissonLimit
	if limit <= 0 {
		limit = realize.DefaultPoissonLimit
	}

	errs := make([]error, bins.N())
	var wg sync.WaitGroup
	work := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts := make([]float64, ropts.NReals)
			for f := range work {
				errs[f] = realizeGridBin(f, cells, bins, weights, opts, limit, drawLimit, cube, counts)
			}
		}()
	}
	for f := 0; f < bins.N(); f++ {
		work <- f
	}
	close(work)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return cube, nil
}

// realizeGridBin handles one frequency bin: its own seeded substream,
// cells in grid order, harmonics in option order.
func realizeGridBin(
	f int,
	cells []gridCell,
	bins realize.FreqBins,
	weights []float64,
	opts Options,
	poissonLimit, drawLimit float64,
	cube *realize.Cube,
	counts []float64,
) error {
	sampler := realize.NewOccupationSampler(poissonLimit, rand.NewSource(opts.Realize.Seed+uint64(f)+1))

	for h, harm := range opts.Harmonics {
		if weights[h] <= 0 {
			continue
		}
		for ci, c := range cells {
			num, coef := cellBand(c, bins.Centers[f], bins.DlnF[f], opts.Eccen, weights[h], harm)
			if math.IsInf(num, 0) || math.IsNaN(num) || num == 0 {
				continue
			}

			if num > drawLimit {
				// Well-populated band: the expectation is exact enough.
				for r := 0; r < cube.NReal; r++ {
					cube.Add(f, h, r, num*coef)
				}
				continue
			}

			if err := sampler.Draw(num, counts); err != nil {
				return fmt.Errorf("cell %d harmonic %d: %w", ci, harm, err)
			}
			for r, n := range counts {
				if n == 0 {
					continue
				}
				cube.Add(f, h, r, n*coef)
			}
		}
	}

	return nil
}

func normalizedCutoff(opts Options) float64 {
	if opts.Realize.EccenCutoff > 0 {
		return opts.Realize.EccenCutoff
	}

	return realize.DefaultEccenCutoff
}

func zeroMatrix(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}

	return out
}
