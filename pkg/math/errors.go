package math

import "errors"

var (
	// ErrNoPoints is returned when a bounding volume is built from an empty point set.
	ErrNoPoints = errors.New("math: no points")

	// ErrPointRange is returned when an index/count pair does not fit the point slice.
	ErrPointRange = errors.New("math: point range out of bounds")

	// ErrSingularMatrix is returned when a matrix has no inverse or no decomposition.
	ErrSingularMatrix = errors.New("math: singular matrix")

	// ErrDegenerate is returned when inputs collapse to a zero-length direction.
	ErrDegenerate = errors.New("math: degenerate input")
)
