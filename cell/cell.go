package cell

import (
	"errors"
	"fmt"
	"reflect"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/safemem/raw"
)

// ErrInvalid is returned (or panicked) when a cell owns no value.
var ErrInvalid = errors.New("cell: invalid cell")

// noCopy lets go vet's copylocks check flag copies of a Cell.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Cell owns exactly one heap-allocated T.
type Cell[T any] struct {
	noCopy noCopy

	ptr     *T
	cleanup runtime.Cleanup
	tracked bool
}

// New allocates a zero T.
func New[T any]() *Cell[T] {
	return wrap(new(T))
}

// From allocates a T initialized to a copy of v.
func From[T any](v T) *Cell[T] {
	p := new(T)
	*p = v
	return wrap(p)
}

// Make allocates the T built by ctor.
// Constructor arguments are captured by the closure.
func Make[T any](ctor func() T) *Cell[T] {
	return From(ctor())
}

// MakeWith allocates the T built by calling ctor with args.
func MakeWith[T, A any](ctor func(...A) T, args ...A) *Cell[T] {
	return From(ctor(args...))
}

// With creates a cell holding init, runs fn with it and releases the cell
// when fn returns or panics.
func With[T any](init T, fn func(*Cell[T]) error) error {
	c := From(init)
	defer c.Release()
	return fn(c)
}

// Valid reports whether the cell owns a value.
func (c *Cell[T]) Valid() bool {
	return c != nil && c.ptr != nil
}

// Get returns a copy of the owned value.
// It panics with ErrInvalid on an invalid cell.
func (c *Cell[T]) Get() T {
	return *c.mustPtr()
}

// Mut returns the owned value for in-place mutation. The pointer is a
// borrow: it must not be retained past Release.
// It panics with ErrInvalid on an invalid cell.
func (c *Cell[T]) Mut() *T {
	return c.mustPtr()
}

// Load returns a copy of the owned value, or ErrInvalid.
func (c *Cell[T]) Load() (T, error) {
	if !c.Valid() {
		var zero T
		return zero, ErrInvalid
	}
	return *c.ptr, nil
}

// Swap exchanges the values held by c and other. Both cells keep their own
// allocations. Nothing happens if either cell is invalid.
func (c *Cell[T]) Swap(other *Cell[T]) {
	if c == other || !c.Valid() || !other.Valid() {
		return
	}
	*c.ptr, *other.ptr = *other.ptr, *c.ptr
}

// Release releases the owned value. Only the first call has an effect.
func (c *Cell[T]) Release() {
	if !c.Valid() {
		return
	}
	if c.tracked {
		c.cleanup.Stop()
		c.tracked = false
	}
	raw.Zero(c.ptr)
	c.ptr = nil
}

// Bytes returns the byte image of the owned value, aliasing its storage.
// It is nil for an invalid cell or a zero-sized T.
func (c *Cell[T]) Bytes() []byte {
	if !c.Valid() {
		return nil
	}
	size := unsafe.Sizeof(*c.ptr)
	if size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(c.ptr)), size)
}

func (c *Cell[T]) String() string {
	if !c.Valid() {
		return "<invalid>"
	}
	return fmt.Sprint(*c.ptr)
}

func (c *Cell[T]) mustPtr() *T {
	if !c.Valid() {
		panic(ErrInvalid)
	}
	return c.ptr
}

// Leak describes a cell that became unreachable without Release.
type Leak struct {
	Type string
	Size uintptr
}

var leakHandler atomic.Pointer[func(Leak)]

// SetLeakHandler installs h to be called for every cell created afterwards
// that is garbage collected without Release. A nil h disables tracking.
// Tracking costs one runtime cleanup registration per cell.
func SetLeakHandler(h func(Leak)) {
	if h == nil {
		leakHandler.Store(nil)
		return
	}
	leakHandler.Store(&h)
}

func wrap[T any](p *T) *Cell[T] {
	c := &Cell[T]{ptr: p}
	if h := leakHandler.Load(); h != nil {
		leak := Leak{
			Type: reflect.TypeFor[T]().String(),
			Size: unsafe.Sizeof(*p),
		}
		c.cleanup = runtime.AddCleanup(c, *h, leak)
		c.tracked = true
	}
	return c
}
