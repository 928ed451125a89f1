// Package inspect renders the byte image of values for debugging.
//
// It consumes byte images only (raw.Image, cell.Cell.Bytes) and never
// allocates or releases the memory it looks at.
//
//	v := inspect.Of(&header)
//	v.Dump(os.Stderr)
//
// prints
//
//	memory view for main.header (8 B)
//	0xc000012345: 01 00 00 00 ff
//	0xc00001234a: 00 00 00
package inspect
