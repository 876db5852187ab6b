// SPDX-License-Identifier: MIT

// Package grid: functional configuration for construction and copying.
// This file defines:
//   - Option / options (functional options with internal state),
//   - the documented default behavior,
//   - WithX constructors with strong validation (panic on nil funcs),
//   - gatherOptions helper (internal).
//
// Notes:
//   - Defaults: every slot starts as the zero value of T, and copies use
//     plain assignment (a shallow copy for pointer, slice and map elements).
//   - The copy policy is a per-instance setting. Clone, CopyFrom and MoveFrom
//     carry it to the destination, so a Grid never silently loses it.
package grid

// Option configures a Grid at construction time.
type Option[T any] func(*options[T])

// options holds the resolved configuration. Fields are unexported; public
// APIs consume ...Option[T].
type options[T any] struct {
	defaultFn func() T  // nil ⇒ zero value of T
	copyFn    func(T) T // nil ⇒ plain assignment
}

// WithDefault sets the constructor used by New to initialize every slot.
// fn is called once per slot, in row-major order, so each slot owns its own
// value (useful for maps, slices, or structs with required setup).
// Panics if fn is nil.
func WithDefault[T any](fn func() T) Option[T] {
	if fn == nil {
		panic("grid: WithDefault(nil)")
	}

	return func(o *options[T]) { o.defaultFn = fn }
}

// WithCopy sets the element duplicator used whenever a value is stored into
// more than one place: NewFilled and Single store fn(v); Clone and CopyFrom
// store fn(src[i]) for every element. The Grid retains fn.
// Panics if fn is nil.
func WithCopy[T any](fn func(T) T) Option[T] {
	if fn == nil {
		panic("grid: WithCopy(nil)")
	}

	return func(o *options[T]) { o.copyFn = fn }
}

// gatherOptions applies opts in order over the defaults; later options win.
func gatherOptions[T any](opts []Option[T]) options[T] {
	var o options[T]
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
