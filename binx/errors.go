package binx

import "errors"

var (
	// ErrEmptyInput indicates the input slice is nil or has no bytes
	// where the operation requires at least one.
	ErrEmptyInput = errors.New("binx: input must be non-empty")
	// ErrOutOfRange indicates a bounded parameter outside its documented
	// range (bit shift ∉ [0,7], negative byte count).
	ErrOutOfRange = errors.New("binx: parameter out of range")
	// ErrLengthMismatch indicates paired operands of differing lengths.
	ErrLengthMismatch = errors.New("binx: operands must have equal length")
)
