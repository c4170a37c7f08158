package stats

import (
	"math"
	"slices"
)

// PercentileMedian is the percentile at which Percentile matches Median.
const PercentileMedian = 50.0

// Percentile returns the p-th percentile of s, p ∈ [0, 100], using
// linear interpolation between the two nearest ranks: with the copy
// sorted ascending, idx = p/100·(n−1), and the result interpolates
// between sorted[⌊idx⌋] and sorted[⌈idx⌉] by the fractional part.
// The input is not mutated.
//
// Errors:
//   - ErrEmptyInput when s has no elements.
//   - ErrOutOfRange when p ∉ [0, 100].
//
// Complexity: O(n log n).
func Percentile(s []float64, p float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	if p < 0 || p > 100 {
		return 0, ErrOutOfRange
	}

	sorted := make([]float64, len(s))
	copy(sorted, s)
	slices.Sort(sorted)

	idx := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower], nil
	}

	frac := idx - float64(lower)

	return sorted[lower]*(1-frac) + sorted[upper]*frac, nil
}

// Median returns the middle element of the sorted copy for odd lengths,
// and the arithmetic mean of the two central elements for even lengths.
// This is the sole canonical even-length formula; Median(s) equals
// Percentile(s, 50) within floating-point tolerance.
//
// Errors: ErrEmptyInput when s has no elements.
func Median(s []float64) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}

	sorted := make([]float64, len(s))
	copy(sorted, s)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid], nil
	}

	lo, hi := sorted[mid-1], sorted[mid]

	// lo + (hi-lo)/2 avoids overflow of (lo+hi) for extreme magnitudes.
	return lo + (hi-lo)/2, nil
}
