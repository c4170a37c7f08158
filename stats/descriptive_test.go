package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim-Maes/ArrayExtensions/stats"
)

// TestSum covers ints, floats and the empty-slice zero.
func TestSum(t *testing.T) {
	assert.Equal(t, 10, stats.Sum([]int{1, 2, 3, 4}))
	assert.Equal(t, 1.5, stats.Sum([]float64{0.5, 1.0}))
	assert.Zero(t, stats.Sum([]int{}))
}

// TestMinMaxRange covers the ordered reductions and the empty error.
func TestMinMaxRange(t *testing.T) {
	lo, err := stats.Min([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 1, lo)

	hi, err := stats.Max([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, hi)

	spread, err := stats.Range([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, spread)

	_, err = stats.Min([]int{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Max([]int{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
	_, err = stats.Range([]int{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

// TestMean covers the arithmetic mean and the empty error.
func TestMean(t *testing.T) {
	m, err := stats.Mean([]float64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)

	_, err = stats.Mean(nil)
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}

// TestMode verifies frequency winner and first-occurrence tie-break.
func TestMode(t *testing.T) {
	m, err := stats.Mode([]int{1, 2, 2, 3, 3, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, m)

	m, err = stats.Mode([]int{5, 7, 5, 7})
	require.NoError(t, err)
	assert.Equal(t, 5, m, "ties break toward the earliest first occurrence")

	// Interleaved duplicates: 1 completes its pair before 2 does, but 2
	// was seen first, so the first-occurrence policy must pick 2.
	m, err = stats.Mode([]int{2, 1, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, m, "tie-break follows first occurrence, not earliest completed count")

	_, err = stats.Mode([]string{})
	assert.ErrorIs(t, err, stats.ErrEmptyInput)
}
