// SPDX-License-Identifier: MIT
// Package grid: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every exported
// operation returns one of these (possibly wrapped with call-site context)
// and tests MUST check them via errors.Is. Panics are reserved for the
// Must* fast paths and for nonsensical option arguments.

package grid

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "grid: ...". Call sites wrap with
// gridErrorf so the sentinel stays matchable through errors.Is.

var (
	// ErrBadShape is returned when a requested dimension is negative.
	ErrBadShape = errors.New("grid: invalid shape")

	// ErrAllocation is returned when the rows*cols buffer cannot be obtained,
	// either because the element count overflows int or the runtime refuses
	// the slice length.
	ErrAllocation = errors.New("grid: cannot allocate buffer")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Checked accessors return it; Must* accessors panic with it.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrNilGrid indicates that a nil *Grid (receiver or argument) was used.
	ErrNilGrid = errors.New("grid: nil grid")
)

// error context tags
const (
	ctxNew      = "New"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxPtr      = "Ptr"
	ctxRow      = "Row"
	ctxReadRow  = "ReadRow"
	ctxCopyFrom = "CopyFrom"
	ctxMoveFrom = "MoveFrom"
)

// gridErrorf attaches method context and coordinates to a sentinel.
// Output shape: "Grid.<method>(row,col): <sentinel>".
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}
