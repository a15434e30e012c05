// Package gwback models populations of merging massive-black-hole
// binaries and computes the stochastic gravitational-wave background
// (GWB) they produce, together with single-source statistics.
//
// 🚀 What is gwback?
//
//	A numeric library that takes binary evolutionary tracks (or a dense
//	number-density grid) produced by an external population model and
//	turns them into Monte-Carlo realizations of the characteristic
//	strain spectrum:
//	  • gravphys — Kepler/GW closed-form relations, harmonic power
//	    distribution g(n,e), lambda factor, cosmology interface
//	  • track    — resampling of evolutionary tracks onto a fixed grid
//	    of observed GW frequencies (hardening and softening trajectories,
//	    multiple harmonics, growable event table)
//	  • realize  — Poisson/Gaussian occupation sampling and strain²
//	    accumulation over (frequency, harmonic, realization)
//	  • samgrid  — density-grid pathway: direct integration, outlier
//	    sampling and full discretized realizations, kept mutually
//	    consistent
//	  • config   — environment-driven engine configuration
//
// ✨ Why choose gwback?
//
//   - Deterministic – one seeded stream per frequency bin, identical
//     results at any worker count
//   - Careful numerics – explicit handling of degenerate segments,
//     stalled binaries (df/dt = 0) and the circular-orbit limit
//   - Scales – built for 10^5–10^6 binaries × tens of frequency bins ×
//     harmonics × thousands of realizations
//
// All physical quantities are in cgs units (cm, g, s); eccentricity and
// redshift are dimensionless. See each subpackage's doc.go for details.
//
//	go get github.com/lvukan/gwback
package gwback
