package track

import "github.com/rs/zerolog"

// TrackSet holds the evolutionary tracks of a binary population as flat
// arrays plus per-binary inclusive index ranges. Units are cgs:
// separations in cm, masses in g, rates in cm/s and 1/s; eccentricity
// and redshift dimensionless. Samples within one binary's range are
// ordered by time; the derived observed frequency need not be monotonic.
// A TrackSet is immutable for the duration of resampling.
type TrackSet struct {
	Sepa  []float64 // orbital separation per sample
	Redz  []float64 // redshift per sample
	Mass1 []float64 // primary mass per sample
	Mass2 []float64 // secondary mass per sample
	Dadt  []float64 // hardening rate da/dt (negative = hardening)

	// Eccen and Dedt are optional: both nil means a circular population.
	Eccen []float64
	Dedt  []float64

	First []int // inclusive start index of each binary's track
	Last  []int // inclusive end index of each binary's track
}

// NBins returns the number of binaries in the set.
func (ts *TrackSet) NBins() int { return len(ts.First) }

// Validate checks the whole-input invariants: matching array lengths,
// optional arrays all-or-none, and in-bounds non-inverted index ranges.
// Called by Resample before any computation.
func (ts *TrackSet) Validate() error {
	n := len(ts.Sepa)
	if n == 0 ||
		len(ts.Redz) != n || len(ts.Mass1) != n || len(ts.Mass2) != n || len(ts.Dadt) != n {
		return ErrShapeMismatch
	}
	if (ts.Eccen == nil) != (ts.Dedt == nil) {
		return ErrShapeMismatch
	}
	if ts.Eccen != nil && (len(ts.Eccen) != n || len(ts.Dedt) != n) {
		return ErrShapeMismatch
	}
	if len(ts.First) != len(ts.Last) {
		return ErrShapeMismatch
	}
	for b := range ts.First {
		if ts.First[b] < 0 || ts.Last[b] < ts.First[b] || ts.Last[b] >= n {
			return ErrBadRange
		}
	}

	return nil
}

// Event is one row of the resampler output: the interpolated state of
// binary Bin at the moment its FreqIdx-th target observed GW frequency
// is crossed at harmonic Harm. Events are append-only and consumed
// read-only by the realization engine.
type Event struct {
	Bin     int // binary index
	FreqIdx int // index into the target frequency grid
	HarmIdx int // index into the harmonics list
	Harm    int // harmonic number n

	M1    float64
	M2    float64
	Redz  float64
	Sepa  float64
	Eccen float64
	Dadt  float64
	Dedt  float64
}

// Options configures a resampling pass.
//
//   - Harmonics — orbital-frequency harmonics to match targets against;
//     empty defaults to {2} (the circular GW harmonic).
//   - Workers   — number of goroutines resampling binaries; values < 2
//     run sequentially. Output is identical for any value.
//   - Logger    — destination for degenerate-segment reporting; defaults
//     to a no-op logger.
type Options struct {
	Harmonics []int
	Workers   int
	Logger    zerolog.Logger
}

// DefaultOptions returns the canonical configuration: circular harmonic
// only, sequential, silent.
func DefaultOptions() Options {
	return Options{
		Harmonics: []int{2},
		Workers:   1,
		Logger:    zerolog.Nop(),
	}
}

// Result is the outcome of a resampling pass: the trimmed event table
// and the count of degenerate segments that produced no events.
type Result struct {
	Events     []Event
	Degenerate int
}
