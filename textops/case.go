package textops

import (
	"strings"
	"unicode"
)

// ToUpperAll returns a copy of s with every element upper-cased.
func ToUpperAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.ToUpper(v)
	}

	return out
}

// ToLowerAll returns a copy of s with every element lower-cased.
func ToLowerAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.ToLower(v)
	}

	return out
}

// TrimAll returns a copy of s with leading and trailing whitespace
// removed from every element.
func TrimAll(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.TrimSpace(v)
	}

	return out
}

// Capitalize returns a copy of s with each element's first rune
// upper-cased and the remainder lower-cased. Empty elements pass
// through unchanged.
func Capitalize(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = capitalizeWord(v)
	}

	return out
}

func capitalizeWord(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return w
	}

	var b strings.Builder
	b.Grow(len(w))
	b.WriteRune(unicode.ToUpper(runes[0]))
	for _, r := range runes[1:] {
		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// ReverseEach returns a copy of s with the runes of every element
// reversed.
func ReverseEach(s []string) []string {
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = reverseRunes(v)
	}

	return out
}

func reverseRunes(w string) string {
	runes := []rune(w)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// DistinctIgnoreCase removes case-insensitive duplicates, keeping the
// first occurrence (with its original casing) in input order.
func DistinctIgnoreCase(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := make([]string, 0, len(s))
	for _, v := range s {
		key := strings.ToLower(v)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}

	return out
}

// Join concatenates the elements of s with sep between them.
func Join(s []string, sep string) string {
	return strings.Join(s, sep)
}

// SplitAll splits every element of s around sep and concatenates the
// pieces into a single flat slice.
func SplitAll(s []string, sep string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		out = append(out, strings.Split(v, sep)...)
	}

	return out
}
