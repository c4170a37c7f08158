package stats

import "cmp"

// Number constrains the element types accepted by the generic reductions.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Sum returns the sum of all elements of s. An empty slice sums to zero.
func Sum[T Number](s []T) T {
	var total T
	for _, v := range s {
		total += v
	}

	return total
}

// Min returns the smallest element of s.
//
// Errors: ErrEmptyInput when s has no elements.
func Min[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}

	best := s[0]
	for _, v := range s[1:] {
		if v < best {
			best = v
		}
	}

	return best, nil
}

// Max returns the largest element of s.
//
// Errors: ErrEmptyInput when s has no elements.
func Max[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}

	best := s[0]
	for _, v := range s[1:] {
		if v > best {
			best = v
		}
	}

	return best, nil
}

// Mean returns the arithmetic mean of s.
//
// Errors: ErrEmptyInput when s has no elements.
func Mean(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}

	return Sum(s) / float64(len(s)), nil
}

// Range returns max − min of s.
//
// Errors: ErrEmptyInput when s has no elements.
func Range[T Number](s []T) (T, error) {
	lo, err := Min(s)
	if err != nil {
		return lo, err
	}
	hi, _ := Max(s)

	return hi - lo, nil
}

// Mode returns the most frequent value of s; ties break toward the
// value whose first occurrence comes earliest.
//
// Errors: ErrEmptyInput when s has no elements.
func Mode[T comparable](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}

	counts := make(map[T]int, len(s))
	firstSeen := make(map[T]int, len(s))
	for i, v := range s {
		if _, ok := firstSeen[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	best, bestCount := s[0], counts[s[0]]
	for v, n := range counts {
		if n > bestCount || (n == bestCount && firstSeen[v] < firstSeen[best]) {
			best, bestCount = v, n
		}
	}

	return best, nil
}
