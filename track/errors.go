package track

import "errors"

var (
	// ErrShapeMismatch indicates the flat sample arrays do not share one length.
	ErrShapeMismatch = errors.New("track: flat sample arrays must share one length")
	// ErrBadRange indicates a (First, Last) index range is inverted or out of bounds.
	ErrBadRange = errors.New("track: binary index range is inverted or out of bounds")
	// ErrNoTargets indicates an empty target-frequency grid.
	ErrNoTargets = errors.New("track: target frequency grid must be non-empty")
	// ErrFreqGridOrder indicates target frequencies are not strictly increasing.
	ErrFreqGridOrder = errors.New("track: target frequencies must be strictly increasing and positive")
	// ErrBadHarmonic indicates a non-positive harmonic number.
	ErrBadHarmonic = errors.New("track: harmonics must be positive integers")
)
