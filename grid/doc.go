// Package grid provides Grid[T], a dense, fixed-size, row-major 2D container.
//
// A Grid owns a contiguous buffer of Rows()*Cols() elements; element (r, c)
// lives at offset r*Cols() + c. Sizes never change after construction except
// when a grid adopts another one's dimensions via CopyFrom or MoveFrom.
//
// Construction:
//
//	g, err := grid.New[float32](2, 3)           // every slot = zero value
//	f, err := grid.NewFilled(3, 2, float32(1))  // every slot = 1
//	s := grid.Single("x")                       // 1×1
//	c := g.Clone()                              // deep copy
//	m := g.Move()                               // takes g's buffer, g becomes 0×0
//
// Access comes in two idioms that always address the same slot:
//
//	v, err := g.At(r, c)          // two-index, checked
//	row, err := g.Row(r)          // row view, checked
//	g.MustRow(r)[c] = 2           // row slice, fast path (panics on bad index)
//	*g.MustPtr(r, c) += 1         // two-index, fast path
//
// Index policy: checked accessors return ErrOutOfRange and never panic.
// Must* accessors are for caller-guaranteed indices and panic with an error
// wrapping ErrOutOfRange. The policy is identical for both idioms.
//
// Value semantics: Clone and CopyFrom deep-copy (element duplication through
// WithCopy when configured). Move and MoveFrom transfer the buffer and leave
// the source empty. Release resets to empty and is idempotent.
//
// A Grid is not safe for concurrent use.
package grid
