package textops

// Frequency pairs a value with how many times it occurred.
type Frequency[T comparable] struct {
	Value T
	Count int
}

// CharFrequency counts each rune of s, reported in first-seen order.
func CharFrequency(s []rune) []Frequency[rune] {
	return countInOrder(s)
}

// WordFrequency counts each exact string of s, reported in first-seen
// order. Comparison is case-sensitive.
func WordFrequency(s []string) []Frequency[string] {
	return countInOrder(s)
}

// countInOrder tallies occurrences while preserving the order in which
// values were first seen, keeping results deterministic.
func countInOrder[T comparable](s []T) []Frequency[T] {
	index := make(map[T]int, len(s))
	out := make([]Frequency[T], 0, len(s))
	for _, v := range s {
		if at, ok := index[v]; ok {
			out[at].Count++

			continue
		}
		index[v] = len(out)
		out = append(out, Frequency[T]{Value: v, Count: 1})
	}

	return out
}
