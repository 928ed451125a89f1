package alloc

import (
	"fmt"
	"math"
	"sync"
	"unsafe"

	"github.com/hupe1980/safemem/internal/mmap"
)

// Source supplies raw memory to a Tracker.
//
// Memory from a Source is invisible to the garbage collector, so a Tracker
// only places pointer-free types in it.
type Source interface {
	// Allocate returns size bytes of zeroed, writable memory.
	Allocate(size uintptr) (unsafe.Pointer, error)
	// Free releases memory returned by Allocate with the same size.
	Free(p unsafe.Pointer, size uintptr) error
}

// region is one off-heap mapping.
type region interface {
	Pointer() unsafe.Pointer
	Size() int
	Close() error
}

// OffHeap is a Source backed by anonymous memory mappings, one mapping per
// allocation. Mapping granularity is the OS page size.
type OffHeap struct {
	mu       sync.Mutex
	mappings map[uintptr]region
	mapAnon  func(size int) (region, error)
}

// NewOffHeap creates an off-heap source.
func NewOffHeap() *OffHeap {
	return &OffHeap{
		mappings: make(map[uintptr]region),
		mapAnon: func(size int) (region, error) {
			m, err := mmap.MapAnon(size)
			if err != nil {
				return nil, err
			}
			return m, nil
		},
	}
}

// Allocate implements Source.
func (s *OffHeap) Allocate(size uintptr) (unsafe.Pointer, error) {
	if size > math.MaxInt {
		return nil, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, size)
	}

	m, err := s.mapAnon(int(size))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}

	p := m.Pointer()

	s.mu.Lock()
	s.mappings[uintptr(p)] = m
	s.mu.Unlock()

	return p, nil
}

// Free implements Source. A mapping that fails to unmap stays live, so a
// later Free or Close can retry it.
func (s *OffHeap) Free(p unsafe.Pointer, size uintptr) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.mappings[uintptr(p)]
	if !ok {
		return fmt.Errorf("%w: %p", ErrForeignPointer, p)
	}
	if uintptr(m.Size()) != size {
		return fmt.Errorf("alloc: size mismatch: mapped %d bytes, freeing %d", m.Size(), size)
	}
	if err := m.Close(); err != nil {
		return err
	}
	delete(s.mappings, uintptr(p))
	return nil
}

// Live returns the number of mappings not yet freed.
func (s *OffHeap) Live() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.mappings)
}

// Close unmaps everything still live. Mappings that fail to unmap are kept.
func (s *OffHeap) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var firstErr error
	for p, m := range s.mappings {
		if err := m.Close(); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		delete(s.mappings, p)
	}
	return firstErr
}
