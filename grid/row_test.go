// Package grid_test contains unit tests for row views and idiom agreement.
package grid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvgrid/grid"
	"github.com/stretchr/testify/require"
)

// TestMustRowLayout checks each row slice against the row-major numbering.
func TestMustRowLayout(t *testing.T) {
	g := numbered(t, 3, 4)
	want := [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9, 10, 11}}
	for r := range want {
		if diff := cmp.Diff(want[r], g.MustRow(r)); diff != "" {
			t.Fatalf("row %d mismatch (-want +got):\n%s", r, diff)
		}
	}
}

// TestIdiomsAgree verifies g.MustRow(r)[c] == g.MustAt(r, c) before and after
// mutation through either idiom.
func TestIdiomsAgree(t *testing.T) {
	g := numbered(t, 4, 3)
	agree := func() {
		for r := 0; r < g.Rows(); r++ {
			row := g.MustRow(r)
			for c := 0; c < g.Cols(); c++ {
				require.Equal(t, row[c], g.MustAt(r, c), "(%d,%d)", r, c)
			}
		}
	}
	agree()

	g.MustRow(2)[1] = 100 // row-view write
	require.Equal(t, 100, g.MustAt(2, 1))
	agree()

	require.NoError(t, g.Set(0, 2, -5)) // two-index write
	require.Equal(t, -5, g.MustRow(0)[2])
	agree()

	rv, err := g.Row(3)
	require.NoError(t, err)
	require.NoError(t, rv.Set(0, 42)) // checked row-view write
	require.Equal(t, 42, g.MustAt(3, 0))
	agree()
}

// TestRowView exercises the checked mutable view.
func TestRowView(t *testing.T) {
	g := numbered(t, 2, 3)
	rv, err := g.Row(1)
	require.NoError(t, err)
	require.Equal(t, 3, rv.Len())

	v, err := rv.At(2)
	require.NoError(t, err)
	require.Equal(t, 5, v)

	p, err := rv.Ptr(0)
	require.NoError(t, err)
	*p *= 10
	require.Equal(t, 30, g.MustAt(1, 0))

	_, err = rv.At(3)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.ErrorIs(t, rv.Set(-1, 0), grid.ErrOutOfRange)
	_, err = rv.Ptr(3)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
	require.EqualError(t, rv.Set(3, 0), "RowView.Set(1,3): grid: index out of range")
}

// TestReadOnlyRow exercises the read-only view and its defensive copy.
func TestReadOnlyRow(t *testing.T) {
	g := numbered(t, 2, 3)
	ro, err := g.ReadRow(0)
	require.NoError(t, err)
	require.Equal(t, 3, ro.Len())

	v, err := ro.At(1)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	vals := ro.Values()
	vals[0] = 77
	require.Equal(t, 0, g.MustAt(0, 0)) // Values is a copy

	require.NoError(t, g.Set(0, 2, 9))
	v, err = ro.At(2)
	require.NoError(t, err)
	require.Equal(t, 9, v) // view observes later grid writes

	_, err = ro.At(-1)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}

// TestRowOutOfRange ensures row selection uses the same policy as At.
func TestRowOutOfRange(t *testing.T) {
	g := mustNew[int](t, 2, 2)
	for _, r := range []int{-1, 2} {
		_, err := g.Row(r)
		require.ErrorIs(t, err, grid.ErrOutOfRange)
		_, err = g.ReadRow(r)
		require.ErrorIs(t, err, grid.ErrOutOfRange)
		err = panicErr(func() { g.MustRow(r) })
		require.ErrorIs(t, err, grid.ErrOutOfRange)
	}
}

// TestMustRowBounds ensures a row slice can neither index nor append past its row.
func TestMustRowBounds(t *testing.T) {
	g := numbered(t, 2, 3)
	row := g.MustRow(0)
	require.Equal(t, 3, cap(row))

	require.Panics(t, func() { _ = row[3] }) // runtime bounds check

	_ = append(row, 99) // reallocates; must not touch row 1
	require.Equal(t, 3, g.MustAt(1, 0))
}

// TestZeroColumnRows ensures rows of a k×0 grid are valid empty views.
func TestZeroColumnRows(t *testing.T) {
	g := mustNew[int](t, 3, 0)
	require.Empty(t, g.MustRow(2))
	rv, err := g.Row(1)
	require.NoError(t, err)
	require.Equal(t, 0, rv.Len())
	_, err = g.At(1, 0)
	require.ErrorIs(t, err, grid.ErrOutOfRange)
}
