package realize_test

import (
	"fmt"
	"math"

	"github.com/lvukan/gwback/gravphys"
	"github.com/lvukan/gwback/realize"
	"github.com/lvukan/gwback/track"
)

// ExampleFromEvents realizes a single circular binary crossing one
// observed-frequency bin at its n=2 harmonic.
func ExampleFromEvents() {
	bins, err := realize.NewFreqBins([]float64{4e-9, 8e-9})
	if err != nil {
		fmt.Println("edges:", err)
		return
	}

	mtot := 1e9 * gravphys.MSOL
	ev := track.Event{
		Harm: 2,
		M1:   mtot / 2,
		M2:   mtot / 2,
		Redz: 0.2,
		Sepa: gravphys.KeplerSepaFromFreq(mtot, 3e-9),
		Dadt: -1e5,
	}

	opts := realize.DefaultOptions()
	opts.NReals = 32
	opts.Seed = 1
	opts.BoxVolume = math.Pow(100*gravphys.MPC, 3)

	res, err := realize.FromEvents([]track.Event{ev}, bins, []int{2}, gravphys.DefaultCosmology(), opts)
	if err != nil {
		fmt.Println("realize:", err)
		return
	}

	fmt.Printf("bins=%d harmonics=%d realizations=%d\n",
		res.HC2.NFreq, res.HC2.NHarm, res.HC2.NReal)
	fmt.Printf("occupied=%v excluded=%d\n", res.Occupation[0][0] > 0, res.Excluded)
	// Output:
	// bins=1 harmonics=1 realizations=32
	// occupied=true excluded=0
}
