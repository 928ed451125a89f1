// Package mmap provides anonymous, off-heap memory mappings.
//
// # Overview
//
// A Mapping is a read-write block of pages obtained directly from the
// operating system. The Go garbage collector neither scans nor moves it, so
// it must only ever hold pointer-free data.
//
// # Usage
//
//	m, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//   - Anything else: MapAnon returns ErrUnsupported
//
// # Thread Safety
//
// Close is idempotent and protected by an atomic flag. Callers must ensure no
// goroutine touches Bytes() after Close() returns.
package mmap
