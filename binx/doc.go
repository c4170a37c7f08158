// Package binx provides byte-slice helpers: standard hashing, text
// encodings, compression, bitwise arithmetic and pattern search.
//
// What:
//
//   - Digests: MD5, SHA1, SHA256, SHA512 (16/20/32/64-byte outputs)
//     and a CRC-32 (IEEE) checksum, all bit-compatible with the
//     standard algorithms.
//   - Encodings: hexadecimal and standard Base64, round-trippable with
//     any conforming implementation.
//   - Compression: gzip and raw DEFLATE streams; Decompress(Compress(b))
//     returns b exactly.
//   - Bitwise: And/Or/Xor over equal-length operands, Not, and per-byte
//     shifts bounded to [0, 7].
//   - Pattern search: brute-force scan reporting every (possibly
//     overlapping) match offset; single-pass non-recursive replacement;
//     StartsWith/EndsWith prefix/suffix tests.
//   - RandomBytes backed by crypto/rand, with an injectable reader for
//     deterministic tests.
//
// Empty patterns are defined to match nowhere, so zero-length inputs
// can never loop.
//
// Errors:
//
//   - ErrEmptyInput: the operation requires at least one byte.
//   - ErrOutOfRange: shift amount outside [0, 7] or negative length.
//   - ErrLengthMismatch: And/Or/Xor over different-length operands.
//
// Decompression and decoding errors from malformed input are wrapped
// stdlib errors, surfaced as-is.
package binx
