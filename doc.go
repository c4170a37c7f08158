// Package arrayextensions is a toolbox of small, self-contained helper
// functions over slices — from structural transforms to statistics,
// calendar queries and byte-level analysis.
//
// 🚀 What is ArrayExtensions?
//
//	A collection of independent, pure-function packages that brings together:
//		• Generic sequences: insert, remove, rotate, chunk, slice, search, permute
//		• Statistics: median, percentiles, moments, IQR outlier detection
//		• Text: case mapping, pattern filtering, frequency analysis
//		• Dates: weekday/weekend splits, nth-occurrence queries, business days
//		• Bytes: hashing, encodings, compression, bitwise ops, pattern search
//		• GUIDs: batch generation, version extraction, canonical formatting
//		• Grids: transpose, rotation, row/column extraction over [][]T
//
// ✨ Why choose ArrayExtensions?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – copy-on-write transforms, sentinel errors, no panics
//   - No hidden state – nothing is cached or retained between calls
//   - Deterministic on demand – inject your own random source where it matters
//
// Everything is organized under independent subpackages, none of which
// depends on another:
//
//	seq/     — generic sequence operations over []T
//	stats/   — numeric analysis over []float64 and number slices
//	textops/ — string and rune slice helpers
//	dates/   — calendar filters and groupings over []time.Time
//	binx/    — byte-slice hashing, encoding, compression, patterns
//	guids/   — uuid.UUID slice helpers
//	grid2d/  — rectangular [][]T grid operations
//
// Quick example:
//
//	chunks, _ := seq.Chunk([]int{1, 2, 3, 4, 5}, 2)
//	// → [[1 2] [3 4] [5]]
//
// Dive into the per-package doc.go files for contracts, complexity
// notes and the full error taxonomy.
//
//	go get github.com/Tim-Maes/ArrayExtensions
package arrayextensions
