package track_test

import (
	"fmt"

	"github.com/lvukan/gwback/gravphys"
	"github.com/lvukan/gwback/track"
)

// ExampleResample resamples a single hardening binary onto two target
// observed orbital frequencies.
func ExampleResample() {
	mtot := 1e9 * gravphys.MSOL
	ts := &track.TrackSet{
		Sepa: []float64{
			gravphys.KeplerSepaFromFreq(mtot, 1e-9),
			gravphys.KeplerSepaFromFreq(mtot, 1e-8),
		},
		Redz:  []float64{0, 0},
		Mass1: []float64{mtot / 2, mtot / 2},
		Mass2: []float64{mtot / 2, mtot / 2},
		Dadt:  []float64{-1e4, -1e5},
		First: []int{0},
		Last:  []int{1},
	}

	opts := track.DefaultOptions()
	opts.Harmonics = []int{1}

	res, err := track.Resample(ts, []float64{3e-9, 6e-9}, opts)
	if err != nil {
		fmt.Println("resample:", err)
		return
	}

	for _, ev := range res.Events {
		fmt.Printf("binary %d crossed target %d at harmonic %d\n", ev.Bin, ev.FreqIdx, ev.Harm)
	}
	// Output:
	// binary 0 crossed target 0 at harmonic 1
	// binary 0 crossed target 1 at harmonic 1
}
