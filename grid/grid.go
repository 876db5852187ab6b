// SPDX-License-Identifier: MIT

// Package grid - Grid[T] storage (row-major), construction & value semantics.
//
// Purpose:
//   - Own a contiguous row-major buffer with the explicit index formula r*cols + c.
//   - Provide every construction path (default, fill, single value, clone, move).
//   - Provide copy/move assignment and release with exclusive buffer ownership.
//
// Complexity quicksheet:
//   - New/NewFilled: O(r*c); Single: O(1); Clone/CopyFrom: O(r*c);
//     Move/MoveFrom/Release: O(1); Rows/Cols/Shape/Len: O(1).

package grid

import (
	"fmt"
	"math"
	"runtime"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Grid is a dense rows×cols container of T in row-major order.
//   - rows, cols hold dimensions (>= 0).
//   - data is a flat buffer of length rows*cols (offset = r*cols + c).
//   - copyFn duplicates elements for deep copies (nil ⇒ plain assignment).
//
// The empty state (after Move, MoveFrom as a source, or Release) is 0×0 with
// a nil buffer. The zero Grid[T] value is also a valid empty grid.
//
// A Grid is not safe for concurrent use; callers must serialize access.
type Grid[T any] struct {
	rows, cols int
	data       []T
	copyFn     func(T) T
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid[float64])(nil)

// allocate returns a buffer of rows*cols zero values.
// Negative dimensions yield ErrBadShape; an element count that overflows int
// or that the runtime refuses (makeslice: len out of range) yields ErrAllocation.
func allocate[T any](rows, cols int) (buf []T, err error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if cols != 0 && rows > math.MaxInt/cols {
		return nil, ErrAllocation
	}
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); ok {
				buf, err = nil, ErrAllocation
				return
			}
			panic(r)
		}
	}()

	return make([]T, rows*cols), nil
}

// New creates a rows×cols grid with every slot set to the default value.
// MAIN DESCRIPTION:
//   - Default-value constructor (spec form Grid(rows, cols)).
//
// Implementation:
//   - Stage 1: gather options.
//   - Stage 2: validate shape and allocate; make() zero-fills the buffer.
//   - Stage 3: when WithDefault is given, call it once per slot in row-major order.
//
// Behavior highlights:
//   - Zero rows or zero cols are legal and produce an empty buffer.
//   - No partially built Grid is ever returned.
//
// Inputs:
//   - rows, cols: non-negative dimensions.
//   - opts: WithDefault, WithCopy.
//
// Returns:
//   - *Grid[T]: fully initialized grid.
//
// Errors:
//   - ErrBadShape (negative dimension), ErrAllocation (buffer unavailable).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, opts ...Option[T]) (*Grid[T], error) {
	o := gatherOptions(opts)
	buf, err := allocate[T](rows, cols)
	if err != nil {
		return nil, gridErrorf(ctxNew, rows, cols, err)
	}
	if o.defaultFn != nil {
		for i := range buf {
			buf[i] = o.defaultFn()
		}
	}

	return &Grid[T]{rows: rows, cols: cols, data: buf, copyFn: o.copyFn}, nil
}

// NewFilled creates a rows×cols grid with every slot set to a copy of fill.
// MAIN DESCRIPTION:
//   - Fill-value constructor (spec form Grid(rows, cols, fill)).
//
// Implementation:
//   - Stage 1: validate shape and allocate.
//   - Stage 2: store dup(fill) into every slot, where dup is the WithCopy
//     duplicator or plain assignment.
//
// Errors:
//   - ErrBadShape, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T any](rows, cols int, fill T, opts ...Option[T]) (*Grid[T], error) {
	o := gatherOptions(opts)
	buf, err := allocate[T](rows, cols)
	if err != nil {
		return nil, gridErrorf(ctxNew, rows, cols, err)
	}
	g := &Grid[T]{rows: rows, cols: cols, data: buf, copyFn: o.copyFn}
	for i := range buf {
		buf[i] = g.dup(fill)
	}

	return g, nil
}

// Single creates a 1×1 grid holding v.
// It is a named factory rather than an overload of NewFilled or Clone:
// Single(someGrid) always builds a Grid[*Grid[U]] holding that pointer and is
// never a copy of someGrid.
func Single[T any](v T, opts ...Option[T]) *Grid[T] {
	o := gatherOptions(opts)
	g := &Grid[T]{rows: 1, cols: 1, copyFn: o.copyFn}
	g.data = []T{g.dup(v)}

	return g
}

// dup returns the value to store for v under the grid's copy policy.
func (g *Grid[T]) dup(v T) T {
	if g.copyFn == nil {
		return v
	}

	return g.copyFn(v)
}

// cloneData deep-copies the buffer element by element in row-major order.
// A nil buffer stays nil so the empty state is preserved.
func (g *Grid[T]) cloneData() []T {
	if g.data == nil {
		return nil
	}
	cp := make([]T, len(g.data))
	if g.copyFn == nil {
		copy(cp, g.data)
		return cp
	}
	for i, v := range g.data {
		cp[i] = g.copyFn(v)
	}

	return cp
}

// Clone returns an independent deep copy (copy construction).
// MAIN DESCRIPTION:
//   - New Grid with identical shape, contents and copy policy, own buffer.
//
// Behavior highlights:
//   - Mutations of either grid are never visible through the other.
//   - Elements are duplicated through WithCopy when set; otherwise by assignment.
//   - Cloning an empty grid yields an empty grid; Clone of nil is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (g *Grid[T]) Clone() *Grid[T] {
	if g == nil {
		return nil
	}

	return &Grid[T]{rows: g.rows, cols: g.cols, data: g.cloneData(), copyFn: g.copyFn}
}

// CopyFrom replaces g's contents with a deep copy of src (copy assignment).
// MAIN DESCRIPTION:
//   - Adopt src's dimensions and copy policy, then deep-copy its buffer.
//
// Implementation:
//   - Stage 1: reject nil receiver/argument; return early on self-assignment.
//   - Stage 2: build the new buffer from src.
//   - Stage 3: swap it in, dropping the previously held buffer.
//
// Behavior highlights:
//   - g is untouched when an error is returned.
//   - Row views obtained from g before the call keep referring to the old buffer.
//
// Errors:
//   - ErrNilGrid.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (g *Grid[T]) CopyFrom(src *Grid[T]) error {
	if g == nil || src == nil {
		return fmt.Errorf("Grid.%s: %w", ctxCopyFrom, ErrNilGrid)
	}
	if g == src {
		return nil
	}
	data := src.cloneData()
	g.rows, g.cols, g.data, g.copyFn = src.rows, src.cols, data, src.copyFn

	return nil
}

// MoveFrom transfers src's buffer into g (move assignment).
// g adopts src's dimensions, buffer and copy policy without copying any
// element; src is left empty (0×0, nil buffer). Self-assignment is a no-op.
// Returns ErrNilGrid when g or src is nil.
// Complexity: O(1).
func (g *Grid[T]) MoveFrom(src *Grid[T]) error {
	if g == nil || src == nil {
		return fmt.Errorf("Grid.%s: %w", ctxMoveFrom, ErrNilGrid)
	}
	if g == src {
		return nil
	}
	g.rows, g.cols, g.data, g.copyFn = src.rows, src.cols, src.data, src.copyFn
	src.Release()

	return nil
}

// Move returns a new Grid owning g's buffer and dimensions (move
// construction) and leaves g empty. Move of nil is nil.
// Complexity: O(1).
func (g *Grid[T]) Move() *Grid[T] {
	if g == nil {
		return nil
	}
	out := &Grid[T]{rows: g.rows, cols: g.cols, data: g.data, copyFn: g.copyFn}
	g.Release()

	return out
}

// Release drops the buffer and resets g to the empty 0×0 state.
// Safe to call any number of times, and on nil.
func (g *Grid[T]) Release() {
	if g == nil {
		return
	}
	g.rows, g.cols, g.data = 0, 0, nil
}

// Rows returns the row count (y size). Complexity: O(1).
func (g *Grid[T]) Rows() int {
	if g == nil {
		return 0
	}

	return g.rows
}

// Cols returns the column count (x size). Complexity: O(1).
func (g *Grid[T]) Cols() int {
	if g == nil {
		return 0
	}

	return g.cols
}

// Shape packs Rows() and Cols() into a single call.
func (g *Grid[T]) Shape() (rows, cols int) { return g.Rows(), g.Cols() }

// Len returns rows*cols, the number of stored elements.
func (g *Grid[T]) Len() int {
	if g == nil {
		return 0
	}

	return len(g.data)
}

// IsEmpty reports whether the grid holds no elements.
func (g *Grid[T]) IsEmpty() bool { return g.Len() == 0 }

// String dumps rows as "[a, b]\n" lines using %v. Intended for debugging.
func (g *Grid[T]) String() string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < g.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * g.cols
		for j = 0; j < g.cols; j++ {
			fmt.Fprintf(&b, "%v", g.data[base+j])
			if j+1 < g.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
