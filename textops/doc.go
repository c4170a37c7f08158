// Package textops provides helpers over string and rune slices: case
// mapping, measurement, pattern filtering and frequency analysis.
//
// What:
//
//   - Element-wise case transforms (ToUpperAll, ToLowerAll, Capitalize)
//     and trimming; all copy-on-write.
//   - Measurements: Longest, Shortest, TotalLength, AverageLength.
//   - Pattern work: FilterByPattern over a compiled regexp, Palindromes,
//     AnagramGroups keyed by sorted runes.
//   - Frequency analysis over runes and words, reported in first-seen
//     order so results are deterministic.
//
// Length semantics: measurements count runes, not bytes, so multi-byte
// characters are counted once.
//
// Errors:
//
//   - ErrEmptyInput: the operation requires at least one element
//     (Longest, Shortest, AverageLength).
package textops
