package dates

import "errors"

var (
	// ErrEmptyInput indicates the input slice is nil or has no elements.
	ErrEmptyInput = errors.New("dates: input must be non-empty")
	// ErrOutOfRange indicates a bounded parameter outside its documented
	// range (occurrence ∉ [1,5], quarter ∉ [1,4]).
	ErrOutOfRange = errors.New("dates: parameter out of range")
)
