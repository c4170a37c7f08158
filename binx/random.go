package binx

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Option configures RandomBytes.
type Option func(*options)

type options struct {
	reader io.Reader
}

// WithReader injects a deterministic byte source in place of
// crypto/rand. Intended for tests.
func WithReader(r io.Reader) Option {
	if r == nil {
		panic("binx: WithReader requires a non-nil io.Reader")
	}

	return func(o *options) { o.reader = r }
}

// RandomBytes returns n bytes drawn from a cryptographically secure
// source (crypto/rand) unless a reader is injected.
//
// Errors: ErrOutOfRange when n < 0; wrapped read errors from the source.
func RandomBytes(n int, opts ...Option) ([]byte, error) {
	if n < 0 {
		return nil, ErrOutOfRange
	}

	o := options{reader: rand.Reader}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]byte, n)
	if _, err := io.ReadFull(o.reader, out); err != nil {
		return nil, fmt.Errorf("binx: random read: %w", err)
	}

	return out, nil
}
