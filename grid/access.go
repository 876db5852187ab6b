// SPDX-License-Identifier: MIT

// Package grid - two-index element access.
//
// Purpose:
//   - Checked access: At/Set/Ptr return ErrOutOfRange instead of panicking.
//   - Fast path: MustAt/MustPtr for caller-guaranteed indices; they panic with
//     an error wrapping ErrOutOfRange, the way slice indexing panics.
//   - Both share offsetOf with the row-view idiom (row.go), so g.At(r, c) and
//     g.MustRow(r)[c] always address the same slot.

package grid

// offsetOf bounds-checks (row, col) and returns the row-major offset.
// Returns the plain sentinel; public methods wrap it with their context.
func (g *Grid[T]) offsetOf(row, col int) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if row < 0 || row >= g.rows {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= g.cols {
		return 0, ErrOutOfRange
	}

	// Row-major offset: r*cols + c.
	return row*g.cols + col, nil
}

// At returns a copy of the element at (row, col).
// MAIN DESCRIPTION:
//   - Safe read-only element access.
//
// Errors:
//   - ErrOutOfRange when out of bounds; ErrNilGrid on a nil receiver.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Grid[T]) At(row, col int) (T, error) {
	off, err := g.offsetOf(row, col)
	if err != nil {
		var zero T
		return zero, gridErrorf(ctxAt, row, col, err)
	}

	return g.data[off], nil
}

// Set stores v at (row, col).
// Errors: ErrOutOfRange, ErrNilGrid. Complexity: O(1).
func (g *Grid[T]) Set(row, col int, v T) error {
	off, err := g.offsetOf(row, col)
	if err != nil {
		return gridErrorf(ctxSet, row, col, err)
	}
	g.data[off] = v

	return nil
}

// Ptr returns a pointer to the slot at (row, col) for in-place modification.
// The pointer refers to the current buffer; after CopyFrom, MoveFrom, Move or
// Release it no longer aliases the grid.
func (g *Grid[T]) Ptr(row, col int) (*T, error) {
	off, err := g.offsetOf(row, col)
	if err != nil {
		return nil, gridErrorf(ctxPtr, row, col, err)
	}

	return &g.data[off], nil
}

// MustAt is the unchecked-by-contract form of At: indices are the caller's
// responsibility and a violation panics with an error wrapping ErrOutOfRange.
func (g *Grid[T]) MustAt(row, col int) T {
	off, err := g.offsetOf(row, col)
	if err != nil {
		panic(gridErrorf(ctxAt, row, col, err))
	}

	return g.data[off]
}

// MustPtr is the panicking form of Ptr. Typical use: *g.MustPtr(r, c) += 1.
func (g *Grid[T]) MustPtr(row, col int) *T {
	off, err := g.offsetOf(row, col)
	if err != nil {
		panic(gridErrorf(ctxPtr, row, col, err))
	}

	return &g.data[off]
}
