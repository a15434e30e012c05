package track

import (
	"sync"

	"github.com/lvukan/gwback/gravphys"
)

// Resample walks every binary's track once and emits one Event per
// crossing of a target observed GW frequency, per harmonic. The targets
// are grid-points (not bin edges) and must be strictly increasing.
// Whole-input validation failures return immediately; degenerate
// segments are counted and skipped, never fatal.
//
// Events appear in the table grouped by binary, then by harmonic, in
// track order; this ordering is part of the contract (the realization
// engine's reproducibility depends on a stable event order).
func Resample(ts *TrackSet, targets []float64, opts Options) (Result, error) {
	if err := ts.Validate(); err != nil {
		return Result{}, err
	}
	if len(targets) == 0 {
		return Result{}, ErrNoTargets
	}
	if targets[0] <= 0 {
		return Result{}, ErrFreqGridOrder
	}
	for i := 1; i < len(targets); i++ {
		if targets[i] <= targets[i-1] {
			return Result{}, ErrFreqGridOrder
		}
	}
	harmonics := opts.Harmonics
	if len(harmonics) == 0 {
		harmonics = []int{2}
	}
	for _, n := range harmonics {
		if n < 1 {
			return Result{}, ErrBadHarmonic
		}
	}

	nbins := ts.NBins()
	workers := opts.Workers
	if workers > nbins {
		workers = nbins
	}

	var events []Event
	var degenerate int
	if workers < 2 {
		tbl := newEventTable(len(targets) * nbins)
		for b := 0; b < nbins; b++ {
			degenerate += resampleBinary(ts, targets, harmonics, tbl, b)
		}
		events = tbl.trim()
	} else {
		events, degenerate = resampleParallel(ts, targets, harmonics, nbins, workers)
	}

	if degenerate > 0 {
		opts.Logger.Debug().
			Int("segments", degenerate).
			Msg("degenerate track segments skipped")
	}

	return Result{Events: events, Degenerate: degenerate}, nil
}

// resampleParallel partitions binaries into contiguous chunks, one
// worker and one private table per chunk, then concatenates the tables
// in chunk order. Identical output to the sequential pass.
func resampleParallel(ts *TrackSet, targets []float64, harmonics []int, nbins, workers int) ([]Event, int) {
	tables := make([]*eventTable, workers)
	degs := make([]int, workers)
	chunk := (nbins + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := min(lo+chunk, nbins)
		if lo >= hi {
			tables[w] = newEventTable(1)
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			tbl := newEventTable(len(targets) * (hi - lo))
			for b := lo; b < hi; b++ {
				degs[w] += resampleBinary(ts, targets, harmonics, tbl, b)
			}
			tables[w] = tbl
		}(w, lo, hi)
	}
	wg.Wait()

	total, degenerate := 0, 0
	for w := range tables {
		total += len(tables[w].events)
		degenerate += degs[w]
	}
	out := make([]Event, 0, total)
	for _, tbl := range tables {
		out = append(out, tbl.events...)
	}

	return out, degenerate
}

// resampleBinary runs the single-pass crossing state machine over one
// binary's track for every harmonic, appending events to tbl. Returns
// the number of degenerate segments encountered.
func resampleBinary(ts *TrackSet, targets []float64, harmonics []int, tbl *eventTable, b int) int {
	lo, hi := ts.First[b], ts.Last[b]
	if lo == hi {
		// single-sample track: no segments
		return 0
	}

	// Observed orbital frequency at each sample; shared by all harmonics.
	nf := hi - lo + 1
	fo := make([]float64, nf)
	for i := 0; i < nf; i++ {
		k := lo + i
		fo[i] = gravphys.ObservedOrbitalFreq(ts.Mass1[k]+ts.Mass2[k], ts.Sepa[k], ts.Redz[k])
	}

	degenerate := 0
	for i := 1; i < nf; i++ {
		if fo[i] == fo[i-1] {
			degenerate++
		}
	}

	nt := len(targets)
	for hIdx, n := range harmonics {
		fn := float64(n)
		// j is the crossing pointer: the next candidate target in the
		// current direction of travel. It is carried across segments and
		// clamped into range on direction reversal — never reset to the
		// band edge.
		j := 0
		for i := 1; i < nf; i++ {
			fL := fn * fo[i-1]
			fR := fn * fo[i]
			if fL == fR {
				continue
			}
			tbl.ensure(nt)
			left, right := lo+i-1, lo+i
			if fR > fL {
				// Ascending: emit targets in [fL, fR).
				if j < 0 {
					j = 0
				}
				for j < nt && targets[j] < fL {
					j++
				}
				for j < nt && targets[j] < fR {
					tbl.append(interpEvent(ts, b, left, right, fL, fR, targets[j], j, hIdx, n))
					j++
				}
			} else {
				// Descending: emit targets in (fR, fL].
				if j > nt-1 {
					j = nt - 1
				}
				for j >= 0 && targets[j] > fL {
					j--
				}
				for j >= 0 && targets[j] > fR {
					tbl.append(interpEvent(ts, b, left, right, fL, fR, targets[j], j, hIdx, n))
					j--
				}
			}
		}
	}

	return degenerate
}

// interpEvent linearly interpolates every tracked quantity onto the
// crossing frequency ft, parametrized by observed frequency (not time).
func interpEvent(ts *TrackSet, b, left, right int, fL, fR, ft float64, fIdx, hIdx, n int) Event {
	frac := (ft - fL) / (fR - fL)
	ev := Event{
		Bin:     b,
		FreqIdx: fIdx,
		HarmIdx: hIdx,
		Harm:    n,
		M1:      lerp(ts.Mass1[left], ts.Mass1[right], frac),
		M2:      lerp(ts.Mass2[left], ts.Mass2[right], frac),
		Redz:    lerp(ts.Redz[left], ts.Redz[right], frac),
		Sepa:    lerp(ts.Sepa[left], ts.Sepa[right], frac),
		Dadt:    lerp(ts.Dadt[left], ts.Dadt[right], frac),
	}
	if ts.Eccen != nil {
		ev.Eccen = lerp(ts.Eccen[left], ts.Eccen[right], frac)
		ev.Dedt = lerp(ts.Dedt[left], ts.Dedt[right], frac)
	}

	return ev
}

func lerp(a, b, frac float64) float64 {
	return a + frac*(b-a)
}
