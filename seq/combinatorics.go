package seq

import "iter"

// Permutations yields every ordering of s, lazily, using Heap's
// algorithm. The sequence produces n! slices; each yielded slice is a
// fresh copy the consumer may retain. The input is never mutated.
//
// Combinatorially explosive: callers must bound n themselves; no
// internal guard exists.
//
// Complexity: O(n!·n) total work, O(n) auxiliary space.
func Permutations[T any](s []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		work := make([]T, len(s))
		copy(work, s)

		var generate func(k int) bool
		generate = func(k int) bool {
			if k <= 1 {
				out := make([]T, len(work))
				copy(out, work)

				return yield(out)
			}
			for i := 0; i < k; i++ {
				if !generate(k - 1) {
					return false
				}
				if i == k-1 {
					break
				}
				// Heap's parity rule: even k swaps (i, k-1), odd k swaps (0, k-1).
				if k%2 == 0 {
					work[i], work[k-1] = work[k-1], work[i]
				} else {
					work[0], work[k-1] = work[k-1], work[0]
				}
			}

			return true
		}
		generate(len(work))
	}
}

// Subsets yields every subset of s, lazily, in bitmask order: the i-th
// subset contains element j iff bit j of i is set. The sequence
// produces 2^n slices, starting with the empty subset; each yielded
// slice is a fresh copy.
//
// Combinatorially explosive: callers must bound n themselves; no
// internal guard exists. n is capped implicitly by the uint shift
// width, far beyond any enumerable size.
//
// Complexity: O(2^n·n) total work.
func Subsets[T any](s []T) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		n := len(s)
		for mask := uint64(0); mask < 1<<n; mask++ {
			subset := make([]T, 0, n)
			for j := 0; j < n; j++ {
				if mask&(1<<j) != 0 {
					subset = append(subset, s[j])
				}
			}
			if !yield(subset) {
				return
			}
		}
	}
}
