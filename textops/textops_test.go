package textops_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim-Maes/ArrayExtensions/textops"
)

// TestCaseTransforms covers the element-wise case helpers.
func TestCaseTransforms(t *testing.T) {
	in := []string{"héllo", "WORLD"}

	assert.Equal(t, []string{"HÉLLO", "WORLD"}, textops.ToUpperAll(in))
	assert.Equal(t, []string{"héllo", "world"}, textops.ToLowerAll(in))
	assert.Equal(t, []string{"Héllo", "World"}, textops.Capitalize(in))
	assert.Equal(t, []string{"héllo", "WORLD"}, in, "inputs must stay untouched")

	assert.Equal(t, []string{"", "A"}, textops.Capitalize([]string{"", "a"}))
}

// TestTrimAll strips surrounding whitespace per element.
func TestTrimAll(t *testing.T) {
	assert.Equal(t, []string{"a", "b c"}, textops.TrimAll([]string{" a ", "\tb c\n"}))
}

// TestReverseEach reverses runes, not bytes.
func TestReverseEach(t *testing.T) {
	assert.Equal(t, []string{"cba", "олл"}, textops.ReverseEach([]string{"abc", "лло"}))
}

// TestDistinctIgnoreCase keeps the first casing seen.
func TestDistinctIgnoreCase(t *testing.T) {
	in := []string{"Go", "go", "GO", "rust"}
	assert.Equal(t, []string{"Go", "rust"}, textops.DistinctIgnoreCase(in))
}

// TestJoinSplit round-trips through a separator.
func TestJoinSplit(t *testing.T) {
	assert.Equal(t, "a,b,c", textops.Join([]string{"a", "b", "c"}, ","))
	assert.Equal(t, []string{"a", "b", "c", "d"}, textops.SplitAll([]string{"a,b", "c,d"}, ","))
}

// TestMeasurements counts runes and validates the empty-input error.
func TestMeasurements(t *testing.T) {
	in := []string{"ééé", "abcd", "xy"}

	longest, err := textops.Longest(in)
	require.NoError(t, err)
	assert.Equal(t, "abcd", longest)

	shortest, err := textops.Shortest(in)
	require.NoError(t, err)
	assert.Equal(t, "xy", shortest)

	assert.Equal(t, 9, textops.TotalLength(in), "multi-byte runes count once")

	avg, err := textops.AverageLength(in)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, avg, 1e-12)

	_, err = textops.Longest(nil)
	assert.ErrorIs(t, err, textops.ErrEmptyInput)
	_, err = textops.Shortest(nil)
	assert.ErrorIs(t, err, textops.ErrEmptyInput)
	_, err = textops.AverageLength(nil)
	assert.ErrorIs(t, err, textops.ErrEmptyInput)
}

// TestMeasurements_Ties break toward the earliest element.
func TestMeasurements_Ties(t *testing.T) {
	longest, err := textops.Longest([]string{"aa", "bb"})
	require.NoError(t, err)
	assert.Equal(t, "aa", longest)
}

// TestFilterByPattern filters by a compiled regexp.
func TestFilterByPattern(t *testing.T) {
	in := []string{"alpha", "beta", "gamma"}
	re := regexp.MustCompile(`a$`)

	assert.Equal(t, []string{"alpha", "beta", "gamma"}, textops.FilterByPattern(in, re))
	assert.Equal(t, []string{"beta"}, textops.FilterByPattern(in, regexp.MustCompile(`^b`)))
	assert.Empty(t, textops.FilterByPattern(in, nil), "nil pattern matches nothing")
}

// TestPalindromes includes empty strings and is case-sensitive.
func TestPalindromes(t *testing.T) {
	in := []string{"level", "go", "", "Anna", "anna"}
	assert.Equal(t, []string{"level", "", "anna"}, textops.Palindromes(in))
}

// TestAnagramGroups partitions case-insensitively in first-seen order.
func TestAnagramGroups(t *testing.T) {
	in := []string{"listen", "silent", "go", "enlist", "og"}
	want := [][]string{
		{"listen", "silent", "enlist"},
		{"go", "og"},
	}
	assert.Equal(t, want, textops.AnagramGroups(in))
}

// TestCharFrequency reports counts in first-seen order.
func TestCharFrequency(t *testing.T) {
	got := textops.CharFrequency([]rune("abraca"))
	want := []textops.Frequency[rune]{
		{Value: 'a', Count: 3},
		{Value: 'b', Count: 1},
		{Value: 'r', Count: 1},
		{Value: 'c', Count: 1},
	}
	assert.Equal(t, want, got)
}

// TestWordFrequency is case-sensitive and order-preserving.
func TestWordFrequency(t *testing.T) {
	got := textops.WordFrequency([]string{"go", "Go", "go"})
	want := []textops.Frequency[string]{
		{Value: "go", Count: 2},
		{Value: "Go", Count: 1},
	}
	assert.Equal(t, want, got)
}
