// Package samgrid computes the gravitational-wave background from a
// semi-analytic population density grid, and reconciles the analytic
// integral against its stochastic realization.
//
// 🚀 The density grid
//
//	DensityGrid tabulates the comoving number of merging binaries per
//	unit (log₁₀ total mass, mass ratio, redshift) at the corners of a
//	rectilinear grid. Each cell contributes through its density-weighted
//	centroid: the centroid binary stands in for every binary in the
//	cell, and the cell's integrated count scales its contribution.
//
// ✨ Three agreeing pathways
//
//	IntegrateDirect  — the analytic expectation spectrum: Σ count·strain²
//	                   per (frequency, harmonic), no randomness.
//	RealizeDiscrete  — every cell's occupation drawn stochastically
//	                   (Poisson, or clamped Gaussian above the switch
//	                   limit), using the realize package's sampler and
//	                   substream layout.
//	SampleOutliers   — the hybrid: rare cells (expected occupation at or
//	                   below Options.OutlierLimit) drawn stochastically,
//	                   the well-populated remainder added analytically.
//
//	The mean of RealizeDiscrete over many realizations converges to
//	IntegrateDirect; SampleOutliers interpolates between the two. This
//	agreement is the package's correctness cross-check.
//
// All three pathways share one per-cell kernel, so they cannot drift
// apart numerically.
package samgrid
