package realize

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// OccupationSampler draws integer occupation counts for a given
// expectation: Poisson below the switch limit, the Gaussian large-λ
// limit (mean = variance = λ, clamped at zero) above it. One sampler
// owns one random stream; it is not safe for concurrent use.
type OccupationSampler struct {
	limit float64
	src   rand.Source
}

// NewOccupationSampler returns a sampler switching to the Gaussian
// approximation above limit, drawing from src.
func NewOccupationSampler(limit float64, src rand.Source) *OccupationSampler {
	return &OccupationSampler{limit: limit, src: src}
}

// Draw fills out with len(out) independent occupation counts of
// expectation lam. lam == 0 writes zeros without touching the random
// stream; lam < 0 (or NaN) returns ErrNegativeOccupation.
func (s *OccupationSampler) Draw(lam float64, out []float64) error {
	if lam < 0 || math.IsNaN(lam) {
		return ErrNegativeOccupation
	}
	if lam == 0 {
		for i := range out {
			out[i] = 0
		}

		return nil
	}

	if lam > s.limit {
		dist := distuv.Normal{Mu: lam, Sigma: math.Sqrt(lam), Src: s.src}
		for i := range out {
			v := dist.Rand()
			if v < 0 {
				v = 0
			}
			out[i] = v
		}

		return nil
	}

	dist := distuv.Poisson{Lambda: lam, Src: s.src}
	for i := range out {
		out[i] = dist.Rand()
	}

	return nil
}
