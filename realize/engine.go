package realize

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/lvukan/gwback/gravphys"
	"github.com/lvukan/gwback/track"
)

// FromEvents consumes a resampled event table and produces NReals
// stochastic realizations of the characteristic strain squared per
// (frequency bin, harmonic). See the package documentation for the
// per-event pipeline and the reproducibility contract.
func FromEvents(
	events []track.Event,
	bins FreqBins,
	harmonics []int,
	cosmo gravphys.Cosmology,
	opts Options,
) (*Result, error) {
	opts = opts.normalized()
	if opts.NReals < 1 {
		return nil, ErrNoRealizations
	}
	if opts.BoxVolume <= 0 {
		return nil, ErrBadVolume
	}
	if cosmo == nil {
		return nil, ErrNoCosmology
	}
	if bins.N() < 1 {
		return nil, ErrBadEdges
	}
	if len(harmonics) == 0 {
		harmonics = []int{2}
	}

	// Bucket events per frequency bin, preserving table order: the draw
	// order within a bin is part of the reproducibility contract.
	nf, nh := bins.N(), len(harmonics)
	buckets := make([][]int, nf)
	for i, ev := range events {
		if ev.FreqIdx < 0 || ev.FreqIdx >= nf || ev.HarmIdx < 0 || ev.HarmIdx >= nh ||
			harmonics[ev.HarmIdx] != ev.Harm {
			return nil, fmt.Errorf("%w: event %d (freq %d, harmonic %d)",
				ErrBinMismatch, i, ev.FreqIdx, ev.Harm)
		}
		buckets[ev.FreqIdx] = append(buckets[ev.FreqIdx], i)
	}

	res := &Result{
		HC2:        NewCube(nf, nh, opts.NReals),
		Expect:     zeroMatrix(nf, nh),
		Occupation: zeroMatrix(nf, nh),
		Foreground: zeroMatrix(nf, opts.NReals),
		Background: zeroMatrix(nf, opts.NReals),
	}

	errs := make([]error, nf)
	excluded := make([]int, nf)

	var wg sync.WaitGroup
	work := make(chan int)
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counts := make([]float64, opts.NReals)
			for f := range work {
				excluded[f], errs[f] = realizeBin(f, buckets[f], events, bins, cosmo, opts, res, counts)
			}
		}()
	}
	for f := 0; f < nf; f++ {
		work <- f
	}
	close(work)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	for f, n := range excluded {
		res.Excluded += n
		if n > 0 {
			opts.Logger.Debug().Int("bin", f).Int("events", n).
				Msg("events excluded for non-finite occupation")
		}
	}
	if res.Excluded > 0 {
		opts.Logger.Info().Int("events", res.Excluded).
			Msg("excluded stalled-binary events from realization")
	}

	// Foreground/background split per realization: the loudest occupied
	// source vs the summed remainder.
	totals := res.HC2.Collapse()
	for f := 0; f < nf; f++ {
		for r := 0; r < opts.NReals; r++ {
			res.Background[f][r] = totals[f][r] - res.Foreground[f][r]
		}
	}

	return res, nil
}

// realizeBin draws every event of one frequency bin from the bin's own
// seeded substream. Writes only rows f of the shared result, so bins
// are safely processed in parallel.
func realizeBin(
	f int,
	bucket []int,
	events []track.Event,
	bins FreqBins,
	cosmo gravphys.Cosmology,
	opts Options,
	res *Result,
	counts []float64,
) (excluded int, err error) {
	sampler := NewOccupationSampler(opts.PoissonLimit, rand.NewSource(opts.Seed+uint64(f)+1))
	dlnf := bins.DlnF[f]

	for _, i := range bucket {
		ev := events[i]
		harm := float64(ev.Harm)
		zp1 := 1.0 + ev.Redz
		frstOrb := bins.Centers[f] * zp1 / harm

		// Harmonic power weight; the circular limit short-circuits.
		var gne float64
		if ev.Eccen < opts.EccenCutoff {
			if ev.Harm != 2 {
				continue
			}
			gne = 1.0
		} else {
			gne = gravphys.FreqDistFunc(ev.Harm, ev.Eccen)
		}

		mchirp := gravphys.ChirpMass(ev.M1, ev.M2)
		dcom := cosmo.ComovingDistance(ev.Redz)
		hs := gravphys.GWStrainSource(mchirp, dcom*zp1, frstOrb)

		// Residence time in the band counts for softening crossings too:
		// the occupation uses |df/dt|.
		dfdt, _ := gravphys.DfdtFromDadt(ev.Dadt, ev.Sepa, frstOrb)
		lam := gravphys.LambdaFactorDlnf(frstOrb, math.Abs(dfdt), ev.Redz, dcom)
		num := lam * dlnf / opts.BoxVolume
		if math.IsInf(num, 0) || math.IsNaN(num) {
			excluded++
			continue
		}
		if num < 0 {
			return excluded, fmt.Errorf("%w: event %d (binary %d)", ErrNegativeOccupation, i, ev.Bin)
		}

		coef := hs * hs * gne * (2.0 / harm) * (2.0 / harm) / dlnf
		res.Occupation[f][ev.HarmIdx] += num
		res.Expect[f][ev.HarmIdx] += num * coef
		if num == 0 {
			continue
		}

		if err := sampler.Draw(num, counts); err != nil {
			return excluded, fmt.Errorf("event %d (binary %d): %w", i, ev.Bin, err)
		}
		for r, c := range counts {
			if c == 0 {
				continue
			}
			res.HC2.Add(f, ev.HarmIdx, r, c*coef)
			if coef > res.Foreground[f][r] {
				res.Foreground[f][r] = coef
			}
		}
	}

	return excluded, nil
}

func zeroMatrix(rows, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
	}

	return out
}
