package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim-Maes/ArrayExtensions/seq"
)

// TestZipUnzip round-trips two slices through pairs.
func TestZipUnzip(t *testing.T) {
	pairs, err := seq.Zip([]int{1, 2, 3}, []string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, seq.Pair[int, string]{First: 2, Second: "b"}, pairs[1])

	nums, strs := seq.Unzip(pairs)
	assert.Equal(t, []int{1, 2, 3}, nums)
	assert.Equal(t, []string{"a", "b", "c"}, strs)
}

// TestZip_LengthMismatch rejects unequal inputs.
func TestZip_LengthMismatch(t *testing.T) {
	_, err := seq.Zip([]int{1}, []string{"a", "b"})
	assert.ErrorIs(t, err, seq.ErrLengthMismatch)
}
