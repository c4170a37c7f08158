// Package seq provides structural operations over generic slices:
// appension, insertion, removal, rotation, chunking, slicing, search,
// shuffling and combinatorial enumeration.
//
// What:
//
//   - Copy-on-write transforms: every function returns a fresh slice and
//     leaves its input untouched, except the documented in-place minority
//     (Fill, SetAt).
//   - Index-validated accessors with explicit sentinel errors, plus
//     default-value variants (AtOr, FirstOr, LastOr) that never fail.
//   - Classic bounded binary search over caller-sorted input.
//   - Lazy permutation (Heap's algorithm) and subset (bitmask) streams
//     exposed as iter.Seq — n! and 2^n results respectively.
//   - Randomized shuffle/sample with an injectable *rand.Rand for
//     deterministic tests.
//
// Conventions:
//
//   - Slicing uses half-open intervals [start, end): start included,
//     end excluded.
//   - Rotation amounts are taken modulo the length; rotating an empty
//     slice is a no-op.
//   - Binary search assumes the input is sorted under the supplied
//     comparator; behavior on unsorted input is undefined and not
//     validated (caller responsibility).
//
// Complexity:
//
//   - Transforms and queries: O(n) time, O(n) space for the copy.
//   - BinarySearch: O(log n).
//   - Permutations: O(n!·n) total, O(n) auxiliary. Subsets: O(2^n·n).
//     Both are combinatorially explosive — callers must bound n; no
//     internal guard exists.
//
// Errors:
//
//   - ErrEmptyInput: the operation requires at least one element.
//   - ErrIndexOutOfRange: a positional argument is outside [0, len).
//   - ErrInvalidArgument: a scalar parameter is nonsensical
//     (size ≤ 0, end ≤ start, negative rotation, n > len for Sample).
//   - ErrLengthMismatch: paired inputs differ in length (Zip, Interleave).
package seq
