package maze

import "errors"

var (
	// ErrOutOfBounds indicates a coordinate outside the grid was accessed.
	// Callers are expected to check InRange first; hitting this is a bug.
	ErrOutOfBounds = errors.New("maze: position out of bounds")

	// ErrConfiguration indicates generation parameters that cannot be
	// satisfied, such as more rewards than the lattice can hold.
	ErrConfiguration = errors.New("maze: invalid configuration")
)
