package alloc

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/safemem/abort"
	"github.com/hupe1980/safemem/internal/conv"
	"github.com/hupe1980/safemem/internal/layout"
	"github.com/hupe1980/safemem/internal/resource"
)

// Tracker is a tracking allocator.
//
// The byte counter is atomic; everything else about the values it hands out
// is the caller's to synchronize.
type Tracker struct {
	total   atomic.Uint64
	source  Source
	budget  *resource.Budget
	logger  *slog.Logger
	metrics MetricsCollector
}

// New creates a Tracker.
func New(opts ...Option) *Tracker {
	o := options{
		logger:  slog.Default(),
		metrics: NoopMetricsCollector{},
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Tracker{
		source:  o.source,
		budget:  resource.NewBudget(o.memoryLimit),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// TotalBytes returns the cumulative number of bytes allocated over the
// tracker's lifetime. It never decreases.
func (t *Tracker) TotalBytes() uint64 {
	return t.total.Load()
}

// InUse returns the bytes currently reserved against the memory limit,
// or 0 when no limit is configured.
func (t *Tracker) InUse() int64 {
	return t.budget.Used()
}

func (t *Tracker) String() string {
	if limit := t.budget.Limit(); limit > 0 {
		return fmt.Sprintf("alloc.Tracker{total: %s, in use: %s of %s}",
			humanize.IBytes(t.TotalBytes()),
			humanize.IBytes(uint64(t.budget.Used())),
			humanize.IBytes(uint64(limit)))
	}
	return fmt.Sprintf("alloc.Tracker{total: %s}", humanize.IBytes(t.TotalBytes()))
}

// Alloc allocates one zeroed T. Failure is fatal.
func Alloc[T any](t *Tracker) *T {
	s, size, err := allocate[T](t, 1)
	if err != nil {
		fail[T]("alloc", size, err)
	}
	return &s[0]
}

// AllocMany allocates a contiguous block of count zeroed Ts. Failure is fatal.
func AllocMany[T any](t *Tracker, count int) []T {
	s, size, err := allocate[T](t, count)
	if err != nil {
		fail[T]("alloc_many", size, err)
	}
	return s
}

// TryAlloc is Alloc returning the failure instead of terminating.
func TryAlloc[T any](t *Tracker) (*T, error) {
	s, size, err := allocate[T](t, 1)
	if err != nil {
		t.logFailure("alloc", layout.TypeName[T](), size, err)
		return nil, err
	}
	return &s[0], nil
}

// TryAllocMany is AllocMany returning the failure instead of terminating.
func TryAllocMany[T any](t *Tracker, count int) ([]T, error) {
	s, size, err := allocate[T](t, count)
	if err != nil {
		t.logFailure("alloc_many", layout.TypeName[T](), size, err)
		return nil, err
	}
	return s, nil
}

// Destroy releases a value obtained from Alloc or TryAlloc.
// TotalBytes is unaffected. Destroying twice, or destroying memory from
// another tracker, is undefined behavior.
func Destroy[T any](t *Tracker, p *T) error {
	if p == nil {
		return nil
	}
	return release(t, p, 1)
}

// DestroyMany releases a block obtained from AllocMany or TryAllocMany.
// s must be the block as returned, not a reslice of it.
func DestroyMany[T any](t *Tracker, s []T) error {
	if len(s) == 0 {
		return nil
	}
	return release(t, &s[0], len(s))
}

// allocate returns count zeroed Ts plus the byte size of the request.
func allocate[T any](t *Tracker, count int) ([]T, uint64, error) {
	s, size, err := doAlloc[T](t, count)
	t.metrics.RecordAlloc(size, err)
	return s, size, err
}

func doAlloc[T any](t *Tracker, count int) ([]T, uint64, error) {
	var zero T
	elem := unsafe.Sizeof(zero)

	if count < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	size, err := conv.MulSize(count, elem)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrSizeOverflow, err)
	}
	reserve, err := conv.Uint64ToInt64(uint64(size))
	if err != nil {
		return nil, uint64(size), fmt.Errorf("%w: %w", ErrSizeOverflow, err)
	}

	if !t.budget.TryAcquire(reserve) {
		return nil, uint64(size), fmt.Errorf("%w: %d bytes requested, %d of %d in use",
			ErrLimitExceeded, reserve, t.budget.Used(), t.budget.Limit())
	}

	s, err := obtain[T](t.source, count, size)
	if err != nil {
		t.budget.Release(reserve)
		return nil, uint64(size), err
	}

	total := t.total.Add(uint64(size))
	t.logger.Debug("allocated",
		"type", layout.TypeName[T](),
		"count", count,
		"bytes", size,
		"total", total,
	)
	return s, uint64(size), nil
}

func obtain[T any](src Source, count int, size uintptr) (s []T, err error) {
	if src == nil || size == 0 {
		defer func() {
			if r := recover(); r != nil {
				re, ok := r.(runtime.Error)
				if !ok {
					panic(r)
				}
				s, err = nil, fmt.Errorf("%w: %w", ErrOutOfMemory, re)
			}
		}()
		return make([]T, count), nil
	}

	if layout.HasPointers[T]() {
		return nil, fmt.Errorf("%w: %s", ErrPointerType, layout.TypeName[T]())
	}

	p, err := src.Allocate(size)
	if err != nil {
		if !errors.Is(err, ErrOutOfMemory) {
			err = fmt.Errorf("%w: %w", ErrOutOfMemory, err)
		}
		return nil, err
	}
	if p == nil {
		return nil, ErrOutOfMemory
	}
	return unsafe.Slice((*T)(p), count), nil
}

func release[T any](t *Tracker, p *T, count int) error {
	size := uintptr(count) * unsafe.Sizeof(*p)

	if t.source == nil || size == 0 {
		// Drop references so the collector can reclaim what they point at.
		clear(unsafe.Slice(p, count))
	} else if err := t.source.Free(unsafe.Pointer(p), size); err != nil {
		t.logger.Warn("destroy failed",
			"type", layout.TypeName[T](),
			"bytes", size,
			"error", err,
		)
		t.metrics.RecordDestroy(uint64(size), err)
		return err
	}

	t.budget.Release(int64(size))
	t.metrics.RecordDestroy(uint64(size), nil)
	t.logger.Debug("destroyed",
		"type", layout.TypeName[T](),
		"count", count,
		"bytes", size,
	)
	return nil
}

func (t *Tracker) logFailure(op, typ string, size uint64, err error) {
	t.logger.Warn("allocation failed",
		"op", op,
		"type", typ,
		"bytes", size,
		"error", err,
	)
}

func fail[T any](op string, size uint64, err error) {
	abort.Fail(&abort.Error{
		Op:   op,
		Type: layout.TypeName[T](),
		Size: size,
		Err:  err,
	})
}
