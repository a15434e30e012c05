package realize

import "errors"

var (
	// ErrNoRealizations indicates Options.NReals < 1.
	ErrNoRealizations = errors.New("realize: number of realizations must be at least 1")
	// ErrBadVolume indicates a non-positive survey comoving volume.
	ErrBadVolume = errors.New("realize: survey comoving volume must be positive")
	// ErrNoCosmology indicates a nil cosmology collaborator.
	ErrNoCosmology = errors.New("realize: cosmology must be provided")
	// ErrBadEdges indicates frequency-bin edges that are not positive and
	// strictly increasing, or fewer than two of them.
	ErrBadEdges = errors.New("realize: frequency bin edges must be positive and strictly increasing")
	// ErrBinMismatch indicates an event referencing a frequency bin or
	// harmonic outside the grids handed to the engine.
	ErrBinMismatch = errors.New("realize: event references a bin or harmonic outside the grid")
	// ErrNegativeOccupation indicates a negative expected occupation
	// number: an upstream sign error, never sampled around.
	ErrNegativeOccupation = errors.New("realize: negative expected occupation number")
)
