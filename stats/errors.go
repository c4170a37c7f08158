package stats

import "errors"

var (
	// ErrEmptyInput indicates the input slice is nil or has no elements.
	ErrEmptyInput = errors.New("stats: input must be non-empty")
	// ErrOutOfRange indicates a bounded parameter outside its documented
	// range (percentile ∉ [0,100], IQR multiplier < 0).
	ErrOutOfRange = errors.New("stats: parameter out of range")
	// ErrLengthMismatch indicates paired slices of differing lengths.
	ErrLengthMismatch = errors.New("stats: slices must have equal length")
)
