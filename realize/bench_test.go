package realize_test

import (
	"math"
	"testing"

	"github.com/lvukan/gwback/gravphys"
	"github.com/lvukan/gwback/realize"
	"github.com/lvukan/gwback/track"
)

// benchPopulation fabricates nev events spread uniformly over the bins
// of fb, all at the n=2 harmonic.
func benchPopulation(nev int, fb realize.FreqBins) []track.Event {
	mtot := 1e9 * gravphys.MSOL
	events := make([]track.Event, nev)
	for i := range events {
		events[i] = track.Event{
			Bin:     i,
			FreqIdx: i % fb.N(),
			Harm:    2,
			M1:      mtot / 2,
			M2:      mtot / 2,
			Redz:    0.2,
			Sepa:    gravphys.KeplerSepaFromFreq(mtot, 3e-9),
			Dadt:    -1e5,
		}
	}

	return events
}

func benchBins() realize.FreqBins {
	edges := make([]float64, 21)
	for i := range edges {
		edges[i] = 1e-9 * math.Pow(1.3, float64(i))
	}
	fb, _ := realize.NewFreqBins(edges)

	return fb
}

func BenchmarkFromEvents(b *testing.B) {
	fb := benchBins()
	events := benchPopulation(5000, fb)
	cosmo := gravphys.DefaultCosmology()

	opts := realize.DefaultOptions()
	opts.NReals = 100
	opts.BoxVolume = math.Pow(500*gravphys.MPC, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := realize.FromEvents(events, fb, []int{2}, cosmo, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFromEvents_Parallel(b *testing.B) {
	fb := benchBins()
	events := benchPopulation(5000, fb)
	cosmo := gravphys.DefaultCosmology()

	opts := realize.DefaultOptions()
	opts.NReals = 100
	opts.Workers = 8
	opts.BoxVolume = math.Pow(500*gravphys.MPC, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := realize.FromEvents(events, fb, []int{2}, cosmo, opts); err != nil {
			b.Fatal(err)
		}
	}
}
