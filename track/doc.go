// Package track models binary evolutionary tracks and resamples them
// onto a fixed grid of observed gravitational-wave frequencies.
//
// 🚀 What does the resampler do?
//
//	An external evolution model produces, per binary, a time-ordered
//	sequence of (separation, eccentricity, redshift, masses, hardening
//	rates). Samples of all binaries live in shared flat arrays; each
//	binary owns the inclusive index range (First[b], Last[b]). The
//	resampler walks every binary's track once, left to right, and emits
//	one Event per crossing of a target observed frequency:
//	  • ascending segments (hardening) advance a target pointer upward
//	  • descending segments (softening) walk it back down
//	  • a trajectory that reverses over a target legitimately crosses it
//	    more than once — every crossing is kept, never deduplicated
//	  • degenerate segments (identical endpoint frequencies) are
//	    counted, logged and skipped: direction is undefined
//	All tracked quantities are linearly interpolated in observed
//	frequency (not time) onto the crossing. With harmonics, the pass is
//	repeated per harmonic n, matching a target GW frequency f against
//	the n-th multiple of the observed orbital frequency.
//
// The output event table grows geometrically from an initial capacity
// of nfreqs×nbins, doubling whenever headroom drops below one segment's
// worst case, and is trimmed to its exact size on completion.
//
// Complexity: O(S + E) per binary, S track samples and E emitted
// events; the target pointer never rescans within a monotonic run.
// With Options.Workers > 1 binaries are partitioned across goroutines
// into per-worker tables merged in order — output is identical to the
// sequential pass.
package track
