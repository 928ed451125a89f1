package mmap

import "errors"

var (
	// ErrClosed is returned when attempting to access a closed mapping.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned when the requested size is zero or negative.
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrUnsupported is returned on platforms without anonymous mappings.
	ErrUnsupported = errors.New("mmap: anonymous mappings not supported on this platform")
)
