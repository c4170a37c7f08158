package binx

import (
	"bytes"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
)

// Compress returns b wrapped in a gzip stream at the default level.
//
// Errors: ErrEmptyInput when b has no bytes.
func Compress(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(b); err != nil {
		return nil, fmt.Errorf("binx: gzip write: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("binx: gzip close: %w", err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a gzip stream produced by Compress or any
// conforming gzip encoder.
//
// Errors: ErrEmptyInput for empty input; wrapped gzip errors for
// malformed streams.
func Decompress(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}

	zr, err := gzip.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("binx: gzip open: %w", err)
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("binx: gzip read: %w", err)
	}

	return out, nil
}

// Deflate returns b as a raw DEFLATE stream at the default level.
//
// Errors: ErrEmptyInput when b has no bytes.
func Deflate(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}

	var buf bytes.Buffer
	fw, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, fmt.Errorf("binx: deflate init: %w", err)
	}
	if _, err = fw.Write(b); err != nil {
		return nil, fmt.Errorf("binx: deflate write: %w", err)
	}
	if err = fw.Close(); err != nil {
		return nil, fmt.Errorf("binx: deflate close: %w", err)
	}

	return buf.Bytes(), nil
}

// Inflate decodes a raw DEFLATE stream produced by Deflate or any
// conforming encoder.
//
// Errors: ErrEmptyInput for empty input; wrapped flate errors for
// malformed streams.
func Inflate(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, ErrEmptyInput
	}

	fr := flate.NewReader(bytes.NewReader(b))
	defer fr.Close()

	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("binx: inflate read: %w", err)
	}

	return out, nil
}
