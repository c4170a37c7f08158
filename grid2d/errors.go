package grid2d

import "errors"

var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid2d: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid2d: all rows must have the same length")
	// ErrIndexOutOfRange indicates a row or column index outside the grid.
	ErrIndexOutOfRange = errors.New("grid2d: index out of range")
	// ErrInvalidArgument indicates nonsensical dimensions
	// (rows/cols ≤ 0, or rows·cols ≠ len(flat) for Reshape).
	ErrInvalidArgument = errors.New("grid2d: invalid argument")
)
