// Package guids provides helpers over []uuid.UUID: batch generation,
// version analysis, uniqueness checks and canonical formatting.
//
// What:
//
//   - NewBatch generates n random (version 4) identifiers.
//   - Versions and FilterByVersion read the RFC 4122 version nibble —
//     the high nibble of the seventh byte of the 16-byte layout.
//   - AllUnique / Duplicates detect repeated identifiers.
//   - ToStrings / ToUpperStrings render the canonical hyphenated form;
//     ToBytes flattens to the standard 16-byte binary layout;
//     FromStrings parses canonical text back.
//   - Sort orders lexicographically by byte layout, copy-on-write.
//
// Errors:
//
//   - ErrOutOfRange: requested version ∉ [1, 5] or negative batch size.
//   - Parse failures from malformed text are wrapped uuid errors.
package guids
