package textops

import (
	"regexp"
	"slices"
	"strings"
)

// FilterByPattern returns the elements of s matched by re, in input
// order. A nil pattern matches nothing.
func FilterByPattern(s []string, re *regexp.Regexp) []string {
	out := make([]string, 0, len(s))
	if re == nil {
		return out
	}
	for _, v := range s {
		if re.MatchString(v) {
			out = append(out, v)
		}
	}

	return out
}

// Palindromes returns the elements of s whose runes read the same in
// both directions, case-sensitively. The empty string is a palindrome.
func Palindromes(s []string) []string {
	out := make([]string, 0, len(s))
	for _, v := range s {
		if v == reverseRunes(v) {
			out = append(out, v)
		}
	}

	return out
}

// AnagramGroups partitions s into groups of mutual anagrams
// (case-insensitive). Groups appear in order of their first member;
// members keep input order. Singleton groups are included.
func AnagramGroups(s []string) [][]string {
	index := make(map[string]int, len(s))
	groups := make([][]string, 0, len(s))
	for _, v := range s {
		key := anagramKey(v)
		if at, ok := index[key]; ok {
			groups[at] = append(groups[at], v)

			continue
		}
		index[key] = len(groups)
		groups = append(groups, []string{v})
	}

	return groups
}

// anagramKey canonicalizes a word to its sorted lower-case runes.
func anagramKey(w string) string {
	runes := []rune(strings.ToLower(w))
	slices.Sort(runes)

	return string(runes)
}
