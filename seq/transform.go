package seq

// Append returns a new slice with v added after the last element of s.
// The input is never mutated, even when it has spare capacity.
//
// Complexity: O(n) time, O(n) space.
func Append[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)

	return append(out, v)
}

// AppendAll returns a new slice with every value of vs added, in order,
// after the last element of s.
//
// Complexity: O(n+m) time, O(n+m) space.
func AppendAll[T any](s []T, vs ...T) []T {
	out := make([]T, len(s), len(s)+len(vs))
	copy(out, s)

	return append(out, vs...)
}

// InsertAt returns a new slice with v inserted at index i, shifting
// subsequent elements right. i == len(s) appends.
//
// Errors: ErrIndexOutOfRange when i ∉ [0, len].
func InsertAt[T any](s []T, i int, v T) ([]T, error) {
	if i < 0 || i > len(s) {
		return nil, ErrIndexOutOfRange
	}

	out := make([]T, 0, len(s)+1)
	out = append(out, s[:i]...)
	out = append(out, v)
	out = append(out, s[i:]...)

	return out, nil
}

// RemoveAt returns a new slice with the element at index i removed.
//
// Errors: ErrIndexOutOfRange when i ∉ [0, len).
func RemoveAt[T any](s []T, i int) ([]T, error) {
	if i < 0 || i >= len(s) {
		return nil, ErrIndexOutOfRange
	}

	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)

	return out, nil
}

// RemoveFirst returns a new slice without the first element.
//
// Errors: ErrEmptyInput when s has no elements.
func RemoveFirst[T any](s []T) ([]T, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	return RemoveAt(s, 0)
}

// RemoveLast returns a new slice without the last element.
//
// Errors: ErrEmptyInput when s has no elements.
func RemoveLast[T any](s []T) ([]T, error) {
	if len(s) == 0 {
		return nil, ErrEmptyInput
	}

	return RemoveAt(s, len(s)-1)
}

// Slice returns a copy of the half-open interval [start, end) of s.
//
// Errors:
//   - ErrIndexOutOfRange when start ∉ [0, len) or end > len.
//   - ErrInvalidArgument when end ≤ start.
func Slice[T any](s []T, start, end int) ([]T, error) {
	if start < 0 || start >= len(s) {
		return nil, ErrIndexOutOfRange
	}
	if end <= start {
		return nil, ErrInvalidArgument
	}
	if end > len(s) {
		return nil, ErrIndexOutOfRange
	}

	out := make([]T, end-start)
	copy(out, s[start:end])

	return out, nil
}

// Chunk splits s into consecutive chunks of the given size; the last
// chunk may be shorter. Chunk(nil, k) yields an empty result.
//
// Errors: ErrInvalidArgument when size ≤ 0.
//
// Complexity: O(n) time, O(n) space.
func Chunk[T any](s []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, ErrInvalidArgument
	}

	out := make([][]T, 0, (len(s)+size-1)/size)
	for start := 0; start < len(s); start += size {
		end := min(start+size, len(s))
		chunk := make([]T, end-start)
		copy(chunk, s[start:end])
		out = append(out, chunk)
	}

	return out, nil
}

// RotateLeft returns a copy of s rotated left by k positions; k is
// taken modulo len(s). Rotating an empty slice is a no-op.
//
// Errors: ErrInvalidArgument when k < 0.
func RotateLeft[T any](s []T, k int) ([]T, error) {
	if k < 0 {
		return nil, ErrInvalidArgument
	}

	out := make([]T, len(s))
	if len(s) == 0 {
		return out, nil
	}

	k %= len(s)
	copy(out, s[k:])
	copy(out[len(s)-k:], s[:k])

	return out, nil
}

// RotateRight returns a copy of s rotated right by k positions; k is
// taken modulo len(s). RotateRight(s, k) inverts RotateLeft(s, k).
//
// Errors: ErrInvalidArgument when k < 0.
func RotateRight[T any](s []T, k int) ([]T, error) {
	if k < 0 {
		return nil, ErrInvalidArgument
	}
	if len(s) == 0 {
		return make([]T, 0), nil
	}

	return RotateLeft(s, len(s)-k%len(s))
}

// Reverse returns a copy of s with the element order inverted.
// Reverse is an involution: Reverse(Reverse(s)) equals s.
func Reverse[T any](s []T) []T {
	out := make([]T, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}

	return out
}

// Interleave merges a and b element by element: a[0], b[0], a[1], b[1], …
//
// Errors: ErrLengthMismatch when len(a) != len(b).
func Interleave[T any](a, b []T) ([]T, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}

	out := make([]T, 0, len(a)*2)
	for i := range a {
		out = append(out, a[i], b[i])
	}

	return out, nil
}

// Fill overwrites every element of s with v, in place.
// One of the two documented in-place mutators in this package.
func Fill[T any](s []T, v T) {
	for i := range s {
		s[i] = v
	}
}

// SetAt assigns v to s[i] in place.
// One of the two documented in-place mutators in this package.
//
// Errors: ErrIndexOutOfRange when i ∉ [0, len).
func SetAt[T any](s []T, i int, v T) error {
	if i < 0 || i >= len(s) {
		return ErrIndexOutOfRange
	}
	s[i] = v

	return nil
}
