// SPDX-License-Identifier: MIT
// Package grid_test contains test helpers.

package grid_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvgrid/grid"
	"github.com/stretchr/testify/require"
)

// mustNew allocates a rows×cols grid or fails the test.
func mustNew[T any](tb testing.TB, rows, cols int, opts ...grid.Option[T]) *grid.Grid[T] {
	tb.Helper()
	g, err := grid.New[T](rows, cols, opts...)
	require.NoError(tb, err)

	return g
}

// numbered returns a rows×cols int grid where slot (r,c) holds r*cols+c,
// so every value also names its own row-major offset.
func numbered(tb testing.TB, rows, cols int) *grid.Grid[int] {
	tb.Helper()
	g := mustNew[int](tb, rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			require.NoError(tb, g.Set(r, c, r*cols+c))
		}
	}

	return g
}

// panicErr runs f and returns the error it panicked with (nil if none).
func panicErr(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var ok bool
			if err, ok = r.(error); !ok {
				err = errors.New("non-error panic")
			}
		}
	}()
	f()

	return nil
}
