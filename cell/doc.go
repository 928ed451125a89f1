// Package cell provides Cell, an owning container for exactly one value.
//
// A Cell allocates its value on creation and releases it exactly once on
// Release. Ownership never moves between cells: Swap exchanges the values,
// each cell keeps its own allocation.
//
//	c := cell.From(int32(42))
//	defer c.Release()
//
//	*c.Mut() += 1
//	fmt.Println(c.Get()) // 43
//
// With wraps the create/release pair in a scope that releases on every exit
// path:
//
//	err := cell.With(config{}, func(c *cell.Cell[config]) error {
//	    return load(c.Mut())
//	})
//
// # Invalid Cells
//
// A cell is invalid after Release, and a Cell declared as a zero value was
// never valid. Swap and Release are no-ops on invalid cells; Get and Mut
// panic with ErrInvalid; Load returns it.
//
// # Dropped Cells
//
// Every factory hands ownership to the caller; discarding the result is a
// bug. Static checking is available through vet, which matches functions by
// full import path:
//
//	go vet -unusedresult.funcs=github.com/hupe1980/safemem/cell.New,github.com/hupe1980/safemem/cell.From,github.com/hupe1980/safemem/cell.Make,github.com/hupe1980/safemem/cell.MakeWith ./...
//
// At runtime, SetLeakHandler reports cells that became unreachable without
// being released.
//
// # Concurrency
//
// A Cell is not safe for concurrent use.
package cell
