// Package lvgrid is a small, dependency-light home for dense 2D containers.
//
// Everything lives in one subpackage:
//
//	grid/ — Grid[T]: a fixed-size, row-major, generic 2D buffer with
//	        checked and fast-path access, deep copy and move semantics
//
// See examples/grid_smoke for a runnable walkthrough.
//
//	go get github.com/katalvlaran/lvgrid/grid
package lvgrid
