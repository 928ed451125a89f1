// Package conv provides checked integer conversions for allocation sizes.
//
// Allocation requests arrive as an element count (int) and an element size
// (uintptr). These helpers reject negative counts and products that do not
// fit the address space, before anything reaches an allocator.
package conv
