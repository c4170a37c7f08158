package grid2d

// Transpose returns the grid mirrored over its main diagonal:
// out[j][i] = g[i][j].
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func Transpose[T any](g [][]T) ([][]T, error) {
	rows, cols, err := Validate(g)
	if err != nil {
		return nil, err
	}

	out := make([][]T, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]T, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = g[i][j]
		}
	}

	return out, nil
}

// RotateClockwise returns the grid rotated 90° clockwise: the first
// row becomes the last column. An r×c grid becomes c×r.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func RotateClockwise[T any](g [][]T) ([][]T, error) {
	rows, cols, err := Validate(g)
	if err != nil {
		return nil, err
	}

	out := make([][]T, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]T, rows)
		for i := 0; i < rows; i++ {
			out[j][rows-1-i] = g[i][j]
		}
	}

	return out, nil
}

// RotateCounterClockwise returns the grid rotated 90° counter-clockwise:
// the first row becomes the first column, reversed. An r×c grid
// becomes c×r.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func RotateCounterClockwise[T any](g [][]T) ([][]T, error) {
	rows, cols, err := Validate(g)
	if err != nil {
		return nil, err
	}

	out := make([][]T, cols)
	for j := 0; j < cols; j++ {
		out[j] = make([]T, rows)
		for i := 0; i < rows; i++ {
			out[j][i] = g[i][cols-1-j]
		}
	}

	return out, nil
}

// Row returns a copy of row i.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrIndexOutOfRange.
func Row[T any](g [][]T, i int) ([]T, error) {
	rows, cols, err := Validate(g)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= rows {
		return nil, ErrIndexOutOfRange
	}

	out := make([]T, cols)
	copy(out, g[i])

	return out, nil
}

// Column returns a copy of column j.
//
// Errors: ErrEmptyGrid, ErrNonRectangular, ErrIndexOutOfRange.
func Column[T any](g [][]T, j int) ([]T, error) {
	rows, cols, err := Validate(g)
	if err != nil {
		return nil, err
	}
	if j < 0 || j >= cols {
		return nil, ErrIndexOutOfRange
	}

	out := make([]T, rows)
	for i := 0; i < rows; i++ {
		out[i] = g[i][j]
	}

	return out, nil
}

// Flatten returns the cells of g in row-major order.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func Flatten[T any](g [][]T) ([]T, error) {
	rows, cols, err := Validate(g)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, rows*cols)
	for i := 0; i < rows; i++ {
		out = append(out, g[i]...)
	}

	return out, nil
}

// Reshape builds a rows×cols grid from a row-major flat slice.
// Inverts Flatten when the dimensions agree.
//
// Errors: ErrInvalidArgument when rows ≤ 0, cols ≤ 0 or
// rows·cols ≠ len(flat).
func Reshape[T any](flat []T, rows, cols int) ([][]T, error) {
	if rows <= 0 || cols <= 0 || rows*cols != len(flat) {
		return nil, ErrInvalidArgument
	}

	out := make([][]T, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]T, cols)
		copy(out[i], flat[i*cols:(i+1)*cols])
	}

	return out, nil
}

// ForEach invokes fn for every cell in deterministic row-major order.
//
// Errors: ErrEmptyGrid, ErrNonRectangular.
func ForEach[T any](g [][]T, fn func(i, j int, v T)) error {
	rows, cols, err := Validate(g)
	if err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fn(i, j, g[i][j])
		}
	}

	return nil
}
