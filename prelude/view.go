package prelude

import (
	"context"
	"math"
)

// Cursor provides pull-based, single-pass access to the elements of a View.
// Once Next has reported ok == false it keeps doing so on every later call.
type Cursor[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the cursor.
	Close() error
}

const (
	unknownSize  = -1
	infiniteSize = math.MaxInt
)

// View is an immutable, lazily evaluated sequence description.
// Nothing is read until a terminal creates a Cursor from it.
type View[T any] struct {
	create     func(ctx context.Context) Cursor[T]
	size       int
	replayable bool
}

// Cursor creates a fresh cursor over v. The caller owns it and must Close it.
func (v *View[T]) Cursor(ctx context.Context) Cursor[T] {
	return v.create(ctx)
}

// Len reports the number of elements v will produce when that is known
// without iterating. Infinite and data-dependent views report false.
func (v *View[T]) Len() (int, bool) {
	if v.size < 0 || v.size == infiniteSize {
		return 0, false
	}
	return v.size, true
}

// Replayable reports whether every cursor created from v observes the same
// elements. Stream-backed views are never replayable.
func (v *View[T]) Replayable() bool {
	return v.replayable
}

// --- Constructors ---

// From creates a single-pass view from an existing Cursor.
// Every cursor created from the view shares the underlying one.
func From[T any](c Cursor[T]) *View[T] {
	return &View[T]{
		create: func(_ context.Context) Cursor[T] {
			return c
		},
		size: unknownSize,
	}
}

// FromSlice creates a replayable view over items.
func FromSlice[T any](items []T) *View[T] {
	return &View[T]{
		create: func(_ context.Context) Cursor[T] {
			return &sliceCursor[T]{items: items}
		},
		size:       len(items),
		replayable: true,
	}
}

// FromFunc creates a view from a factory that produces a new Cursor per
// iteration. The factory must return independent cursors over the same data.
func FromFunc[T any](fn func(ctx context.Context) Cursor[T]) *View[T] {
	return &View[T]{create: fn, size: unknownSize, replayable: true}
}

// Runes creates a replayable view over the runes of s.
func Runes(s string) *View[rune] {
	return FromSlice([]rune(s))
}

// Iota creates an infinite view counting up from start by one. It never
// reports exhaustion, so it must only be combined with a finite view (as in
// Zip or Enumerate) or truncated with Take or TakeWhile.
func Iota(start int) *View[int] {
	return &View[int]{
		create: func(_ context.Context) Cursor[int] {
			return &iotaCursor{next: start}
		},
		size:       infiniteSize,
		replayable: true,
	}
}

// --- Internal cursors ---

type sliceCursor[T any] struct {
	items []T
	index int
}

func (c *sliceCursor[T]) Next(_ context.Context) (T, bool, error) {
	if c.index >= len(c.items) {
		var zero T
		return zero, false, nil
	}
	val := c.items[c.index]
	c.index++
	return val, true, nil
}

func (c *sliceCursor[T]) Close() error { return nil }

type iotaCursor struct {
	next int
}

func (c *iotaCursor) Next(_ context.Context) (int, bool, error) {
	v := c.next
	c.next++
	return v, true, nil
}

func (c *iotaCursor) Close() error { return nil }

