package raw

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/hupe1980/safemem/internal/layout"
)

// ErrPointerType is the panic value for non-zero fills of pointer-bearing types.
var ErrPointerType = errors.New("raw: non-zero fill of a type containing pointers")

// Owner is a container that owns exactly one T, such as *cell.Cell[T].
type Owner[T any] interface {
	Valid() bool
	Mut() *T
}

// Fill writes b into each of the n bytes starting at p and returns n.
// p must address at least n writable bytes; nothing is checked.
func Fill(p unsafe.Pointer, b byte, n uintptr) uintptr {
	if n == 0 {
		return 0
	}
	FillSlice(unsafe.Slice((*byte)(p), n), b)
	return n
}

// FillSlice writes b into every byte of dst and returns len(dst).
func FillSlice(dst []byte, b byte) int {
	if len(dst) == 0 {
		return 0
	}
	if b == 0 {
		clear(dst)
		return len(dst)
	}
	// Doubling copy, as bytes.Repeat does.
	dst[0] = b
	for filled := 1; filled < len(dst); filled *= 2 {
		copy(dst[filled:], dst[:filled])
	}
	return len(dst)
}

// ZeroBytes sets the n bytes starting at p to 0 and returns n.
func ZeroBytes(p unsafe.Pointer, n uintptr) uintptr {
	return Fill(p, 0, n)
}

// FillValue writes b into every byte of *p and returns unsafe.Sizeof(*p).
func FillValue[T any](p *T, b byte) uintptr {
	size := unsafe.Sizeof(*p)
	if layout.HasPointers[T]() {
		if b != 0 {
			panic(fmt.Errorf("%w: %s", ErrPointerType, layout.TypeName[T]()))
		}
		var zero T
		*p = zero
		// Pointer slots are nil now; clear the padding as well.
		return Fill(unsafe.Pointer(p), 0, size)
	}
	return Fill(unsafe.Pointer(p), b, size)
}

// Zero sets every byte of *p to 0 and returns unsafe.Sizeof(*p).
func Zero[T any](p *T) uintptr {
	return FillValue(p, 0)
}

// FillMany writes b into the byte image of every element of s and returns
// the number of bytes written.
func FillMany[T any](s []T, b byte) uintptr {
	if len(s) == 0 {
		return 0
	}
	size := uintptr(len(s)) * unsafe.Sizeof(s[0])
	if layout.HasPointers[T]() {
		if b != 0 {
			panic(fmt.Errorf("%w: %s", ErrPointerType, layout.TypeName[T]()))
		}
		clear(s)
		return Fill(unsafe.Pointer(unsafe.SliceData(s)), 0, size)
	}
	return Fill(unsafe.Pointer(unsafe.SliceData(s)), b, size)
}

// FillOwned writes b into the byte image of the value o owns.
// An invalid owner is left alone and 0 is returned.
func FillOwned[T any](o Owner[T], b byte) uintptr {
	if !o.Valid() {
		return 0
	}
	return FillValue(o.Mut(), b)
}

// Image returns the byte image of *p. The slice aliases *p: writes through it
// change the value. It is nil for zero-sized types.
func Image[T any](p *T) []byte {
	size := unsafe.Sizeof(*p)
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
}
