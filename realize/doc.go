// Package realize turns resampled binary events into Monte-Carlo
// realizations of the stochastic gravitational-wave background.
//
// 🚀 How a realization is drawn
//
//	Each event carries the interpolated state of one binary at one
//	(frequency bin, harmonic). The engine computes, per event:
//	  • the rest-frame orbital frequency implied by the bin center,
//	    the redshift and the harmonic number
//	  • the squared source strain, weighted by g(n,e)·(2/n)²
//	  • the expected occupation number: lambda factor × bin ln-width /
//	    survey comoving volume
//	and draws NReals independent occupation counts — Poisson for small
//	expectations, a clamped Gaussian (Poisson's large-λ limit) above
//	Options.PoissonLimit — accumulating count·strain²/Δlnf into the
//	(frequency, harmonic, realization) output cube.
//
// Degenerate inputs are handled explicitly: an expectation of exactly
// zero contributes nothing (no draw is attempted), a stalled binary
// (df/dt = 0, infinite lambda factor) is excluded and counted on
// Result.Excluded, and a negative expectation aborts the whole
// computation — it can only be an upstream sign error.
//
// ✨ Reproducibility
//
//	One PCG substream per frequency bin, seeded from Options.Seed and
//	the bin index; events are bucketed per bin and drawn in table
//	order. Results are therefore bit-identical for any Options.Workers
//	value, and parallelism never touches the random stream layout.
//
// Random variates come from gonum's distuv distributions over
// golang.org/x/exp/rand sources.
package realize
