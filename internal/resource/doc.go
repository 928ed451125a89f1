// Package resource implements a memory budget for allocation sources.
//
// A Budget reserves bytes against a hard limit before memory is handed out and
// returns them when it is released. Reservation is non-blocking and fail-fast:
//
//	b := resource.NewBudget(1 << 30) // 1GB limit
//
//	if !b.TryAcquire(4096) {
//	    // over the limit
//	}
//	defer b.Release(4096)
//
// # Thread Safety
//
// All Budget methods are safe for concurrent use. The limit is a weighted
// semaphore and usage is an atomic counter.
//
// # Nil Safety
//
// All methods handle a nil Budget gracefully: they become no-ops. A limit of 0
// yields a nil Budget, so callers never need a separate "unlimited" branch.
package resource
