package alloc

import "errors"

var (
	// ErrInvalidCount is returned for a negative element count.
	ErrInvalidCount = errors.New("alloc: invalid element count")
	// ErrSizeOverflow is returned when count*sizeof(T) does not fit in memory.
	ErrSizeOverflow = errors.New("alloc: size overflow")
	// ErrOutOfMemory is returned when the source cannot satisfy a request.
	ErrOutOfMemory = errors.New("alloc: out of memory")
	// ErrLimitExceeded is returned when a request would exceed the memory limit.
	ErrLimitExceeded = errors.New("alloc: memory limit exceeded")
	// ErrPointerType is returned when a pointer-bearing type is requested
	// from a source the garbage collector cannot scan.
	ErrPointerType = errors.New("alloc: type contains pointers")
	// ErrForeignPointer is returned when destroying memory the source did not hand out.
	ErrForeignPointer = errors.New("alloc: pointer not owned by source")
)
