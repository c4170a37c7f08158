package seq

// Contains reports whether v occurs in s.
//
// Complexity: O(n).
func Contains[T comparable](s []T, v T) bool {
	return IndexOf(s, v) != -1
}

// IndexOf returns the index of the first occurrence of v in s,
// or -1 when absent.
func IndexOf[T comparable](s []T, v T) int {
	for i := range s {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// LastIndexOf returns the index of the last occurrence of v in s,
// or -1 when absent.
func LastIndexOf[T comparable](s []T, v T) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == v {
			return i
		}
	}

	return -1
}

// CountOccurrences returns how many elements of s equal v.
func CountOccurrences[T comparable](s []T, v T) int {
	var n int
	for i := range s {
		if s[i] == v {
			n++
		}
	}

	return n
}

// Distinct returns a new slice with duplicates removed, keeping the
// first occurrence of each value in input order.
//
// Complexity: O(n) time, O(n) space.
func Distinct[T comparable](s []T) []T {
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

// First returns the first element of s.
//
// Errors: ErrEmptyInput when s has no elements.
func First[T any](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}

	return s[0], nil
}

// Last returns the last element of s.
//
// Errors: ErrEmptyInput when s has no elements.
func Last[T any](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}

	return s[len(s)-1], nil
}

// FirstOr returns the first element of s, or def when s is empty.
func FirstOr[T any](s []T, def T) T {
	if len(s) == 0 {
		return def
	}

	return s[0]
}

// LastOr returns the last element of s, or def when s is empty.
func LastOr[T any](s []T, def T) T {
	if len(s) == 0 {
		return def
	}

	return s[len(s)-1]
}

// AtOr returns s[i], or def when i is outside [0, len).
func AtOr[T any](s []T, i int, def T) T {
	if i < 0 || i >= len(s) {
		return def
	}

	return s[i]
}

// Filter returns the elements of s for which keep returns true,
// preserving input order.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if keep(v) {
			out = append(out, v)
		}
	}

	return out
}

// Map returns a new slice holding fn applied to every element of s.
func Map[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}

	return out
}
