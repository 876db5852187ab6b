// SPDX-License-Identifier: MIT

// Package grid - row views (the bracket-chain idiom).
//
// A row view is a window over the Cols() contiguous elements beginning at
// r*Cols(). Views share storage with the grid: writes through a RowView are
// visible through At/MustAt and vice versa.
//
// Lifetime:
//   - A view refers to the buffer the grid held when the view was taken.
//     After CopyFrom, MoveFrom, Move or Release on the grid, old views refer
//     to a detached buffer (still memory-safe, no longer the grid's).

package grid

import "fmt"

// viewErrorf wraps a sentinel with row-view context.
func viewErrorf(view, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", view, method, row, col, err)
}

// rowBounds validates row and returns the capacity-capped row slice.
func (g *Grid[T]) rowBounds(row int) ([]T, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if row < 0 || row >= g.rows {
		return nil, ErrOutOfRange
	}
	base := row * g.cols
	// Full slice expression: cap == cols, so append never writes into row+1.
	return g.data[base : base+g.cols : base+g.cols], nil
}

// RowView is a mutable view over one grid row.
type RowView[T any] struct {
	row   int
	cells []T
}

// ReadOnlyRow is a read-only view over one grid row.
type ReadOnlyRow[T any] struct {
	row   int
	cells []T
}

// Row returns a mutable view over row.
// Errors: ErrOutOfRange, ErrNilGrid.
func (g *Grid[T]) Row(row int) (RowView[T], error) {
	cells, err := g.rowBounds(row)
	if err != nil {
		return RowView[T]{}, gridErrorf(ctxRow, row, 0, err)
	}

	return RowView[T]{row: row, cells: cells}, nil
}

// ReadRow returns a read-only view over row.
// Errors: ErrOutOfRange, ErrNilGrid.
func (g *Grid[T]) ReadRow(row int) (ReadOnlyRow[T], error) {
	cells, err := g.rowBounds(row)
	if err != nil {
		return ReadOnlyRow[T]{}, gridErrorf(ctxReadRow, row, 0, err)
	}

	return ReadOnlyRow[T]{row: row, cells: cells}, nil
}

// MustRow returns the row as a slice aliasing the grid buffer, so that
// g.MustRow(r)[c] reads or writes the same slot as g.MustAt(r, c).
// An invalid row panics with an error wrapping ErrOutOfRange; an invalid
// column panics through Go's own slice bounds check.
// The slice's capacity equals Cols().
func (g *Grid[T]) MustRow(row int) []T {
	cells, err := g.rowBounds(row)
	if err != nil {
		panic(gridErrorf(ctxRow, row, 0, err))
	}

	return cells
}

// Len returns the number of columns in the row.
func (v RowView[T]) Len() int { return len(v.cells) }

// At returns a copy of the element at col.
func (v RowView[T]) At(col int) (T, error) {
	if col < 0 || col >= len(v.cells) {
		var zero T
		return zero, viewErrorf("RowView", ctxAt, v.row, col, ErrOutOfRange)
	}

	return v.cells[col], nil
}

// Set stores val at col.
func (v RowView[T]) Set(col int, val T) error {
	if col < 0 || col >= len(v.cells) {
		return viewErrorf("RowView", ctxSet, v.row, col, ErrOutOfRange)
	}
	v.cells[col] = val // write through to the grid buffer

	return nil
}

// Ptr returns a pointer to the slot at col.
func (v RowView[T]) Ptr(col int) (*T, error) {
	if col < 0 || col >= len(v.cells) {
		return nil, viewErrorf("RowView", ctxPtr, v.row, col, ErrOutOfRange)
	}

	return &v.cells[col], nil
}

// Len returns the number of columns in the row.
func (v ReadOnlyRow[T]) Len() int { return len(v.cells) }

// At returns a copy of the element at col.
func (v ReadOnlyRow[T]) At(col int) (T, error) {
	if col < 0 || col >= len(v.cells) {
		var zero T
		return zero, viewErrorf("ReadOnlyRow", ctxAt, v.row, col, ErrOutOfRange)
	}

	return v.cells[col], nil
}

// Values returns a copy of the row's elements.
func (v ReadOnlyRow[T]) Values() []T {
	out := make([]T, len(v.cells))
	copy(out, v.cells)

	return out
}
