package bmp

import "errors"

var (
	// ErrTruncatedInput means fewer bytes were available than a header
	// field or the pixel array requires.
	ErrTruncatedInput = errors.New("bmp: truncated input")
	// ErrOutOfBounds means a coordinate or range lies outside the pixel grid.
	ErrOutOfBounds = errors.New("bmp: out of bounds")
	// ErrUnsupportedFormat means the bitmap uses a valid but unsupported
	// feature (bit depth other than 24, compression, top-down rows...).
	ErrUnsupportedFormat = errors.New("bmp: unsupported format")
)
