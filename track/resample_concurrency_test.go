package track_test

import (
	"math"
	"testing"

	"github.com/lvukan/gwback/track"
	"github.com/stretchr/testify/require"
)

// populationForConcurrency builds a mixed population: hardening tracks,
// reversing tracks, and single-sample stubs, with varied redshifts.
func populationForConcurrency(nbins int) *track.TrackSet {
	ts := &track.TrackSet{}
	for b := 0; b < nbins; b++ {
		z := 0.05 + 0.01*float64(b%7)
		base := 1e-9 * (1.0 + 0.1*float64(b%5))
		switch b % 3 {
		case 0:
			appendTrack(ts, []float64{base, base * 5, base * 30}, z)
		case 1:
			appendTrack(ts, []float64{base, base * 20, base * 4, base * 40}, z)
		default:
			appendTrack(ts, []float64{base}, z)
		}
	}

	return ts
}

// TestResample_WorkerCountInvariance: the event table and degenerate
// count are identical for any parallelization granularity.
func TestResample_WorkerCountInvariance(t *testing.T) {
	ts := populationForConcurrency(41)

	var targets []float64
	for f := 2e-9; f < 4e-8; f *= math.Sqrt2 {
		targets = append(targets, f)
	}

	ref, err := track.Resample(ts, targets, orbOpts())
	require.NoError(t, err)
	require.NotEmpty(t, ref.Events)

	for _, workers := range []int{2, 4, 7, 64} {
		opts := orbOpts()
		opts.Workers = workers
		got, err := track.Resample(ts, targets, opts)
		require.NoError(t, err)
		require.Equal(t, ref.Degenerate, got.Degenerate, "workers=%d", workers)
		require.Equal(t, ref.Events, got.Events, "workers=%d", workers)
	}
}
