package resource

import (
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Budget tracks bytes reserved against a hard memory limit.
type Budget struct {
	limit int64
	sem   *semaphore.Weighted
	used  atomic.Int64
}

// NewBudget creates a budget of limit bytes.
// It returns nil (unlimited) when limit <= 0.
func NewBudget(limit int64) *Budget {
	if limit <= 0 {
		return nil
	}
	return &Budget{
		limit: limit,
		sem:   semaphore.NewWeighted(limit),
	}
}

// TryAcquire reserves bytes and reports whether the limit allowed it.
// Non-blocking - callers control the failure policy.
func (b *Budget) TryAcquire(bytes int64) bool {
	if b == nil || bytes <= 0 {
		return true
	}
	if !b.sem.TryAcquire(bytes) {
		return false
	}
	b.used.Add(bytes)
	return true
}

// Release returns reserved bytes to the budget.
// Releasing more than is currently reserved only releases what is held.
func (b *Budget) Release(bytes int64) {
	if b == nil || bytes <= 0 {
		return
	}
	for {
		cur := b.used.Load()
		n := min(bytes, cur)
		if n == 0 {
			return
		}
		if b.used.CompareAndSwap(cur, cur-n) {
			b.sem.Release(n)
			return
		}
	}
}

// Used returns the currently reserved bytes.
func (b *Budget) Used() int64 {
	if b == nil {
		return 0
	}
	return b.used.Load()
}

// Limit returns the configured limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.limit
}
