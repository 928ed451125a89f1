package mmap

import (
	"sync/atomic"
	"unsafe"
)

// Mapping represents an anonymous memory mapping.
// It owns the underlying byte slice and is responsible for unmapping it.
type Mapping struct {
	data   []byte
	size   int
	closed atomic.Bool
	// unmap is the platform-specific function to unmap the memory.
	unmap func([]byte) error
}

// MapAnon maps size bytes of zeroed, read-write memory outside the Go heap.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, unmapFunc, err := osMapAnon(size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		data:  data,
		size:  size,
		unmap: unmapFunc,
	}, nil
}

// Close unmaps the memory. It is idempotent once it has succeeded; after a
// failed unmap the mapping stays open and Close may be retried.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	if m.unmap != nil && m.data != nil {
		if err := m.unmap(m.data); err != nil {
			m.closed.Store(false)
			return err
		}
	}
	return nil
}

// Bytes returns the underlying byte slice.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Pointer returns the address of the first mapped byte, or nil once closed.
func (m *Mapping) Pointer() unsafe.Pointer {
	if m.closed.Load() || len(m.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(m.data)) //nolint:gosec // off-heap base address
}

// Size returns the size of the mapping in bytes.
func (m *Mapping) Size() int {
	return m.size
}
