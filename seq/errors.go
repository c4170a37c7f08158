package seq

import "errors"

var (
	// ErrEmptyInput indicates the input slice is nil or has no elements
	// where the operation requires at least one.
	ErrEmptyInput = errors.New("seq: input must be non-empty")
	// ErrIndexOutOfRange indicates a positional argument outside [0, len).
	ErrIndexOutOfRange = errors.New("seq: index out of range")
	// ErrInvalidArgument indicates a nonsensical scalar parameter
	// (chunk size ≤ 0, slice end ≤ start, negative rotation amount).
	ErrInvalidArgument = errors.New("seq: invalid argument")
	// ErrLengthMismatch indicates paired slices of differing lengths.
	ErrLengthMismatch = errors.New("seq: slices must have equal length")
)
