package samgrid

import "errors"

var (
	// ErrGridShape reports a density array whose dimensions do not match
	// the grid edges.
	ErrGridShape = errors.New("samgrid: density shape does not match grid edges")

	// ErrEdgeOrder reports grid edges that are not strictly increasing
	// or have fewer than two entries per axis.
	ErrEdgeOrder = errors.New("samgrid: grid edges must be strictly increasing")
)
