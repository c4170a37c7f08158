package guids

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ErrOutOfRange indicates a bounded parameter outside its documented
// range (version ∉ [1,5], negative batch size).
var ErrOutOfRange = errors.New("guids: parameter out of range")

// NewBatch returns n freshly generated random (version 4) UUIDs.
//
// Errors: ErrOutOfRange when n < 0; a wrapped uuid error when the
// entropy source fails.
func NewBatch(n int) ([]uuid.UUID, error) {
	if n < 0 {
		return nil, ErrOutOfRange
	}

	out := make([]uuid.UUID, n)
	for i := range out {
		u, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("guids: generate: %w", err)
		}
		out[i] = u
	}

	return out, nil
}

// Versions returns the RFC 4122 version of every element: the high
// nibble of byte 6 of the binary layout. The nil UUID reports 0.
func Versions(s []uuid.UUID) []int {
	out := make([]int, len(s))
	for i, u := range s {
		out[i] = int(u.Version())
	}

	return out
}

// FilterByVersion returns the elements carrying the requested RFC 4122
// version, v ∈ [1, 5], in input order.
//
// Errors: ErrOutOfRange when v ∉ [1, 5].
func FilterByVersion(s []uuid.UUID, v int) ([]uuid.UUID, error) {
	if v < 1 || v > 5 {
		return nil, ErrOutOfRange
	}

	out := make([]uuid.UUID, 0, len(s))
	for _, u := range s {
		if int(u.Version()) == v {
			out = append(out, u)
		}
	}

	return out, nil
}

// AllUnique reports whether no identifier occurs twice.
func AllUnique(s []uuid.UUID) bool {
	seen := make(map[uuid.UUID]struct{}, len(s))
	for _, u := range s {
		if _, ok := seen[u]; ok {
			return false
		}
		seen[u] = struct{}{}
	}

	return true
}

// Duplicates returns each identifier that occurs more than once,
// reported once, in order of first occurrence.
func Duplicates(s []uuid.UUID) []uuid.UUID {
	counts := make(map[uuid.UUID]int, len(s))
	out := make([]uuid.UUID, 0)
	for _, u := range s {
		counts[u]++
		if counts[u] == 2 {
			out = append(out, u)
		}
	}

	return out
}

// NonNil returns the elements that are not the all-zero UUID,
// in input order.
func NonNil(s []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(s))
	for _, u := range s {
		if u != uuid.Nil {
			out = append(out, u)
		}
	}

	return out
}

// ToStrings renders every element in the canonical hyphenated
// lowercase form.
func ToStrings(s []uuid.UUID) []string {
	out := make([]string, len(s))
	for i, u := range s {
		out[i] = u.String()
	}

	return out
}

// ToUpperStrings renders every element in the canonical hyphenated
// uppercase form.
func ToUpperStrings(s []uuid.UUID) []string {
	out := make([]string, len(s))
	for i, u := range s {
		out[i] = strings.ToUpper(u.String())
	}

	return out
}

// ToBytes flattens s into the standard 16-byte binary layouts,
// concatenated in input order.
func ToBytes(s []uuid.UUID) []byte {
	out := make([]byte, 0, len(s)*16)
	for _, u := range s {
		out = append(out, u[:]...)
	}

	return out
}

// FromStrings parses canonical textual UUIDs back into binary form.
// The first malformed element aborts the whole parse.
func FromStrings(ss []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, len(ss))
	for i, raw := range ss {
		u, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("guids: element %d: %w", i, err)
		}
		out[i] = u
	}

	return out, nil
}

// Sort returns a copy of s ordered lexicographically by the 16-byte
// binary layout.
func Sort(s []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(s))
	copy(out, s)
	slices.SortFunc(out, func(a, b uuid.UUID) int {
		return bytes.Compare(a[:], b[:])
	})

	return out
}
