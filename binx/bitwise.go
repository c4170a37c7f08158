package binx

// And returns the byte-wise AND of a and b.
//
// Errors: ErrLengthMismatch when len(a) != len(b).
func And(a, b []byte) ([]byte, error) {
	return pairwise(a, b, func(x, y byte) byte { return x & y })
}

// Or returns the byte-wise OR of a and b.
//
// Errors: ErrLengthMismatch when len(a) != len(b).
func Or(a, b []byte) ([]byte, error) {
	return pairwise(a, b, func(x, y byte) byte { return x | y })
}

// Xor returns the byte-wise XOR of a and b.
//
// Errors: ErrLengthMismatch when len(a) != len(b).
func Xor(a, b []byte) ([]byte, error) {
	return pairwise(a, b, func(x, y byte) byte { return x ^ y })
}

func pairwise(a, b []byte, op func(x, y byte) byte) ([]byte, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := make([]byte, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}

	return out, nil
}

// Not returns the byte-wise complement of b.
func Not(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = ^v
	}

	return out
}

// ShiftLeft shifts every byte of b left by n bits independently
// (no carry between bytes), n ∈ [0, 7].
//
// Errors: ErrOutOfRange when n ∉ [0, 7].
func ShiftLeft(b []byte, n int) ([]byte, error) {
	if n < 0 || n > 7 {
		return nil, ErrOutOfRange
	}

	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = v << n
	}

	return out, nil
}

// ShiftRight shifts every byte of b right by n bits independently
// (no carry between bytes), n ∈ [0, 7].
//
// Errors: ErrOutOfRange when n ∉ [0, 7].
func ShiftRight(b []byte, n int) ([]byte, error) {
	if n < 0 || n > 7 {
		return nil, ErrOutOfRange
	}

	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = v >> n
	}

	return out, nil
}
