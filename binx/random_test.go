package binx_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tim-Maes/ArrayExtensions/binx"
)

// TestRandomBytes draws the requested length from the default source.
func TestRandomBytes(t *testing.T) {
	out, err := binx.RandomBytes(32)
	require.NoError(t, err)
	assert.Len(t, out, 32)

	empty, err := binx.RandomBytes(0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = binx.RandomBytes(-1)
	assert.ErrorIs(t, err, binx.ErrOutOfRange)
}

// TestRandomBytes_InjectedReader makes the output deterministic.
func TestRandomBytes_InjectedReader(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5})

	out, err := binx.RandomBytes(4, binx.WithReader(src))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, out)

	// A drained reader surfaces a wrapped read error.
	_, err = binx.RandomBytes(4, binx.WithReader(src))
	assert.Error(t, err)
}

// TestWithReader_NilPanics documents that a nil source is programmer error.
func TestWithReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { binx.WithReader(nil) })
}
