package stats

import "math"

// CumulativeSum returns the running totals of s: out[i] = s[0]+…+s[i].
func CumulativeSum[T Number](s []T) []T {
	out := make([]T, len(s))
	var total T
	for i, v := range s {
		total += v
		out[i] = total
	}

	return out
}

// Deltas returns the pairwise differences of s: out[i] = s[i+1] − s[i].
// The result is one element shorter than the input; a slice with fewer
// than two elements yields an empty result.
func Deltas[T Number](s []T) []T {
	if len(s) < 2 {
		return make([]T, 0)
	}

	out := make([]T, len(s)-1)
	for i := 0; i < len(s)-1; i++ {
		out[i] = s[i+1] - s[i]
	}

	return out
}

// Normalize scales s linearly into [0, 1] by min-max scaling. Constant
// input maps to all zeros. The input is not mutated.
//
// Errors: ErrEmptyInput when s has no elements.
func Normalize(s []float64) ([]float64, error) {
	lo, err := Min(s)
	if err != nil {
		return nil, err
	}
	hi, _ := Max(s)

	out := make([]float64, len(s))
	span := hi - lo
	if span == 0 {
		return out, nil
	}
	for i, v := range s {
		out[i] = (v - lo) / span
	}

	return out, nil
}

// Correlation returns the Pearson correlation coefficient of a and b.
// Degrades to 0 when either series has zero spread.
//
// Errors:
//   - ErrLengthMismatch when len(a) != len(b).
//   - ErrEmptyInput when the slices have no elements.
//
// Complexity: O(n).
func Correlation(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}
	if len(a) == 0 {
		return 0, ErrEmptyInput
	}

	meanA, _ := Mean(a)
	meanB, _ := Mean(b)

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}
	if varA == 0 || varB == 0 {
		return 0, nil
	}

	return cov / math.Sqrt(varA*varB), nil
}
