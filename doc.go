// Package safemem provides low-level memory primitives with explicit
// ownership.
//
// The module is split into small, independent packages:
//
//   - cell: Cell[T], an owning container for exactly one value, released
//     exactly once
//   - alloc: a tracking allocator with a lifetime byte counter and a fatal
//     failure policy
//   - raw: byte-fill helpers over raw ranges, typed values and owning cells
//   - abort: the single termination path for allocation failure
//   - inspect: debug views over the byte image of a value
//
// # Quick Start
//
//	c := cell.From(int32(42))
//	defer c.Release()
//
//	raw.FillOwned[int32](c, 0) // c.Get() == 0
//
//	t := alloc.New()
//	buf := alloc.AllocMany[uint64](t, 128)
//	defer alloc.DestroyMany(t, buf)
//	fmt.Println(t.TotalBytes()) // 1024
//
// # Failure Policy
//
// Running out of memory is not recoverable. alloc.Alloc and alloc.AllocMany
// report failure through abort.Fail, which never returns; alloc.TryAlloc and
// alloc.TryAllocMany return the failure instead.
//
// # Concurrency
//
// Nothing here synchronizes access to the memory it hands out. Confine each
// Cell and each allocation to one goroutine or guard it yourself.
package safemem
