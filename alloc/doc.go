// Package alloc provides a tracking allocator.
//
// A Tracker hands out single values and contiguous arrays and keeps a running
// total of every byte it has ever allocated. The total is a lifetime figure:
// Destroy never lowers it.
//
//	t := alloc.New()
//
//	n := alloc.Alloc[node](t)         // one zeroed node
//	buf := alloc.AllocMany[uint64](t, 512)
//	defer alloc.DestroyMany(t, buf)
//	defer alloc.Destroy(t, n)
//
//	fmt.Println(t.TotalBytes())
//
// # Failure Policy
//
// Alloc and AllocMany treat failure as fatal: the request is reported through
// abort.Fail, which terminates the process. TryAlloc and TryAllocMany return
// the same failures as errors for callers that can recover.
//
// On the Go heap, a request no heap could ever serve is caught and reported
// like any other failure. Genuine exhaustion at runtime crashes the Go
// runtime itself before any of this code runs.
//
// # Sources
//
// By default memory comes from the Go heap. WithSource plugs in another
// Source; NewOffHeap maps pages from the operating system instead, which is
// only legal for pointer-free element types.
//
// # Ownership
//
// The tracker keeps no per-allocation bookkeeping. Pairing every allocation
// with exactly one Destroy is the caller's responsibility.
package alloc
