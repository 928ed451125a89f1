// Package raw fills memory byte by byte.
//
// # Byte Images
//
// Every value occupies unsafe.Sizeof bytes of storage. Image exposes that
// storage as a []byte, padding included, and the Fill functions overwrite it
// regardless of the value's field structure. This bypasses the type system:
// use it on plain-data values whose all-zero (or all-b) byte pattern is a
// meaningful state.
//
// # Pointers
//
// Writing a non-zero byte over a pointer would forge an address the garbage
// collector then follows, so FillValue, FillMany and FillOwned panic with
// ErrPointerType for pointer-bearing types unless b is zero. Zeroing such a
// type goes through a typed store so write barriers still run.
//
// # Zeroing
//
// Zero and ZeroBytes are the canonical "nullify" operations: every byte of
// the target becomes 0.
package raw
