package realize

import (
	"math"

	"github.com/rs/zerolog"
)

// Options configures the realization engine.
//
//   - NReals       — number of independent realizations R (≥ 1).
//   - PoissonLimit — expectation above which occupation counts switch
//     from Poisson draws to the Gaussian large-λ limit. Empirically
//     chosen; a configuration knob, not an invariant.
//   - EccenCutoff  — eccentricities below this are treated as circular:
//     all power in harmonic 2, zero elsewhere. Avoids the numerical
//     instability of the harmonic series at e→0.
//   - BoxVolume    — comoving survey volume [cm³] normalizing the
//     lambda factor into an occupation count. Must be set by the caller.
//   - Seed         — base seed of the per-frequency-bin PCG substreams.
//   - Workers      — goroutines processing frequency bins; output is
//     identical for any value.
//   - Logger       — destination for excluded-event reporting; defaults
//     to a no-op logger.
type Options struct {
	NReals       int
	PoissonLimit float64
	EccenCutoff  float64
	BoxVolume    float64
	Seed         uint64
	Workers      int
	Logger       zerolog.Logger
}

// DefaultPoissonLimit is the canonical Poisson/Gaussian switch point.
const DefaultPoissonLimit = 1e8

// DefaultEccenCutoff is the canonical circular-orbit eccentricity cutoff.
const DefaultEccenCutoff = 1e-4

// DefaultOptions returns the canonical configuration. BoxVolume is left
// zero and must be set before use.
func DefaultOptions() Options {
	return Options{
		NReals:       100,
		PoissonLimit: DefaultPoissonLimit,
		EccenCutoff:  DefaultEccenCutoff,
		Workers:      1,
		Logger:       zerolog.Nop(),
	}
}

// normalized fills zero-valued tunables with their defaults.
func (o Options) normalized() Options {
	if o.PoissonLimit <= 0 {
		o.PoissonLimit = DefaultPoissonLimit
	}
	if o.EccenCutoff <= 0 {
		o.EccenCutoff = DefaultEccenCutoff
	}
	if o.Workers < 1 {
		o.Workers = 1
	}

	return o
}

// FreqBins is an observed-GW-frequency binning: log-centered bin
// centers and natural-log widths derived from strictly increasing
// edges.
type FreqBins struct {
	Edges   []float64
	Centers []float64
	DlnF    []float64
}

// NewFreqBins derives centers (geometric means of adjacent edges) and
// ln-widths from bin edges.
func NewFreqBins(edges []float64) (FreqBins, error) {
	if len(edges) < 2 || edges[0] <= 0 {
		return FreqBins{}, ErrBadEdges
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			return FreqBins{}, ErrBadEdges
		}
	}

	n := len(edges) - 1
	fb := FreqBins{
		Edges:   edges,
		Centers: make([]float64, n),
		DlnF:    make([]float64, n),
	}
	for i := 0; i < n; i++ {
		fb.Centers[i] = math.Sqrt(edges[i] * edges[i+1])
		fb.DlnF[i] = math.Log(edges[i+1] / edges[i])
	}

	return fb, nil
}

// N returns the number of bins.
func (fb FreqBins) N() int { return len(fb.Centers) }

// Cube is a dense (frequency, harmonic, realization) array of
// characteristic-strain-squared contributions.
type Cube struct {
	NFreq, NHarm, NReal int

	data []float64
}

// NewCube allocates a zeroed cube.
func NewCube(nfreq, nharm, nreal int) *Cube {
	return &Cube{
		NFreq: nfreq,
		NHarm: nharm,
		NReal: nreal,
		data:  make([]float64, nfreq*nharm*nreal),
	}
}

func (c *Cube) idx(f, h, r int) int {
	return (f*c.NHarm+h)*c.NReal + r
}

// At returns the value at (frequency, harmonic, realization).
func (c *Cube) At(f, h, r int) float64 { return c.data[c.idx(f, h, r)] }

// Add accumulates into (frequency, harmonic, realization).
func (c *Cube) Add(f, h, r int, v float64) { c.data[c.idx(f, h, r)] += v }

// Reals returns the realization vector at (frequency, harmonic) as a
// live view into the cube.
func (c *Cube) Reals(f, h int) []float64 {
	lo := c.idx(f, h, 0)

	return c.data[lo : lo+c.NReal]
}

// Collapse sums the cube over harmonics, returning a
// (frequency × realization) matrix.
func (c *Cube) Collapse() [][]float64 {
	out := make([][]float64, c.NFreq)
	for f := range out {
		out[f] = make([]float64, c.NReal)
		for h := 0; h < c.NHarm; h++ {
			reals := c.Reals(f, h)
			for r, v := range reals {
				out[f][r] += v
			}
		}
	}

	return out
}

// Result is the realization-engine output.
//
//   - HC2        — strain² per (frequency, harmonic, realization).
//   - Expect     — the sample-analytic expectation spectrum per
//     (frequency, harmonic): Σ occupation·strain²/Δlnf without drawing.
//   - Occupation — summed expected occupation per (frequency, harmonic),
//     for conservation cross-checks.
//   - Foreground — per (frequency, realization), the single loudest
//     occupied source's strain² contribution.
//   - Background — total minus foreground.
//   - Excluded   — events dropped for non-finite occupation (stalled
//     binaries); surfaced so reconciliation can account for them.
type Result struct {
	HC2        *Cube
	Expect     [][]float64
	Occupation [][]float64
	Foreground [][]float64
	Background [][]float64
	Excluded   int
}
