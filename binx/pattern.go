package binx

import "bytes"

// FindPattern returns every start offset at which pat occurs inside b,
// overlapping matches included. A pattern longer than b, or an empty
// pattern, yields no matches (the empty pattern must never loop).
//
// Complexity: O(n·m) brute force.
func FindPattern(b, pat []byte) []int {
	out := make([]int, 0)
	if len(pat) == 0 || len(pat) > len(b) {
		return out
	}

	for start := 0; start+len(pat) <= len(b); start++ {
		if bytes.Equal(b[start:start+len(pat)], pat) {
			out = append(out, start)
		}
	}

	return out
}

// ReplacePattern substitutes every occurrence of old in b with new in
// a single left-to-right pass: at each position, a match emits new and
// advances by len(old); otherwise one original byte is emitted.
// Replacement is non-recursive — output produced by a substitution is
// never re-scanned. The lengths of old and new may differ. An empty
// old pattern leaves b unchanged.
func ReplacePattern(b, old, new []byte) []byte {
	if len(old) == 0 || len(old) > len(b) {
		out := make([]byte, len(b))
		copy(out, b)

		return out
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); {
		if i+len(old) <= len(b) && bytes.Equal(b[i:i+len(old)], old) {
			out = append(out, new...)
			i += len(old)

			continue
		}
		out = append(out, b[i])
		i++
	}

	return out
}

// StartsWith reports whether b begins with prefix. Every sequence
// starts with the empty prefix.
func StartsWith(b, prefix []byte) bool {
	return bytes.HasPrefix(b, prefix)
}

// EndsWith reports whether b ends with suffix. Every sequence ends
// with the empty suffix.
func EndsWith(b, suffix []byte) bool {
	return bytes.HasSuffix(b, suffix)
}
