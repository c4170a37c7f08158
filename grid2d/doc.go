// Package grid2d provides operations over rectangular two-dimensional
// slices: construction, transposition, rotation and row/column access.
//
// What:
//
//   - A grid is a [][]T whose rows all share one length, accessed by
//     (row, column) pairs. Rectangularity is validated up front; ragged
//     input fails with ErrNonRectangular.
//   - Transformations (Transpose, RotateClockwise,
//     RotateCounterClockwise, Reshape) are copy-on-write; Fill is the
//     single in-place mutator.
//   - Row and Column return copies, so callers can modify them freely.
//   - Flatten/Reshape convert between a grid and its row-major flat
//     form.
//   - ForEach walks cells in deterministic row-major order.
//
// Complexity: every operation is O(rows·cols).
//
// Errors:
//
//   - ErrEmptyGrid: the grid has no rows or no columns where one is
//     required.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrIndexOutOfRange: a row/column index outside the grid.
//   - ErrInvalidArgument: non-positive dimensions, or a Reshape whose
//     rows·cols does not equal the flat length.
package grid2d
