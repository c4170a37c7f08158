package textops

import "errors"

// ErrEmptyInput indicates the input slice is nil or has no elements
// where the operation requires at least one.
var ErrEmptyInput = errors.New("textops: input must be non-empty")
