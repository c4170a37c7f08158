package textops

import "unicode/utf8"

// Longest returns the element with the most runes; ties break toward
// the earliest element.
//
// Errors: ErrEmptyInput when s has no elements.
func Longest(s []string) (string, error) {
	if len(s) == 0 {
		return "", ErrEmptyInput
	}

	best := s[0]
	bestLen := utf8.RuneCountInString(best)
	for _, v := range s[1:] {
		if n := utf8.RuneCountInString(v); n > bestLen {
			best, bestLen = v, n
		}
	}

	return best, nil
}

// Shortest returns the element with the fewest runes; ties break toward
// the earliest element.
//
// Errors: ErrEmptyInput when s has no elements.
func Shortest(s []string) (string, error) {
	if len(s) == 0 {
		return "", ErrEmptyInput
	}

	best := s[0]
	bestLen := utf8.RuneCountInString(best)
	for _, v := range s[1:] {
		if n := utf8.RuneCountInString(v); n < bestLen {
			best, bestLen = v, n
		}
	}

	return best, nil
}

// TotalLength returns the combined rune count of all elements.
func TotalLength(s []string) int {
	var total int
	for _, v := range s {
		total += utf8.RuneCountInString(v)
	}

	return total
}

// AverageLength returns the mean rune count per element.
//
// Errors: ErrEmptyInput when s has no elements.
func AverageLength(s []string) (float64, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}

	return float64(TotalLength(s)) / float64(len(s)), nil
}
