package grid2d

// New allocates a rows×cols grid of zero values.
//
// Errors: ErrInvalidArgument when rows ≤ 0 or cols ≤ 0.
func New[T any](rows, cols int) ([][]T, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidArgument
	}

	out := make([][]T, rows)
	for i := range out {
		out[i] = make([]T, cols)
	}

	return out, nil
}

// Validate checks that g is rectangular and non-empty, returning its
// dimensions. Shared by every accessor and transform in this package.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func Validate[T any](g [][]T) (rows, cols int, err error) {
	if len(g) == 0 || len(g[0]) == 0 {
		return 0, 0, ErrEmptyGrid
	}

	cols = len(g[0])
	for _, row := range g[1:] {
		if len(row) != cols {
			return 0, 0, ErrNonRectangular
		}
	}

	return len(g), cols, nil
}

// Clone returns a deep copy of g.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func Clone[T any](g [][]T) ([][]T, error) {
	rows, cols, err := Validate(g)
	if err != nil {
		return nil, err
	}

	out := make([][]T, rows)
	for i := range g {
		out[i] = make([]T, cols)
		copy(out[i], g[i])
	}

	return out, nil
}

// Fill overwrites every cell of g with v, in place. The single
// in-place mutator in this package.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func Fill[T any](g [][]T, v T) error {
	if _, _, err := Validate(g); err != nil {
		return err
	}

	for i := range g {
		for j := range g[i] {
			g[i][j] = v
		}
	}

	return nil
}

// Equal reports whether a and b have identical dimensions and cells.
// Ragged or empty grids compare cell-by-cell like any others; no
// validation error is raised.
func Equal[T comparable](a, b [][]T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}

	return true
}
