package prelude

import (
	"context"
)

// Map transforms each value using fn. An error from fn ends the iteration
// and is returned to the terminal that drives it.
func Map[I, O any](v *View[I], fn func(context.Context, I) (O, error)) *View[O] {
	return &View[O]{
		create: func(ctx context.Context) Cursor[O] {
			return &mapCursor[I, O]{source: v.create(ctx), fn: fn}
		},
		size:       v.size,
		replayable: v.replayable,
	}
}

// FlatMap transforms each value into a view and flattens the results.
func FlatMap[I, O any](v *View[I], fn func(context.Context, I) (*View[O], error)) *View[O] {
	return &View[O]{
		create: func(ctx context.Context) Cursor[O] {
			return &flatMapCursor[I, O]{source: v.create(ctx), fn: fn}
		},
		size:       unknownSize,
		replayable: v.replayable,
	}
}

// Filter keeps only values that satisfy the predicate.
func Filter[T any](v *View[T], fn func(T) bool) *View[T] {
	return &View[T]{
		create: func(ctx context.Context) Cursor[T] {
			return &filterCursor[T]{source: v.create(ctx), fn: fn}
		},
		size:       unknownSize,
		replayable: v.replayable,
	}
}

// Tap calls fn as a side-effect for each value, then passes the value through unchanged.
func Tap[T any](v *View[T], fn func(context.Context, T) error) *View[T] {
	return &View[T]{
		create: func(ctx context.Context) Cursor[T] {
			return &tapCursor[T]{source: v.create(ctx), fn: fn}
		},
		size:       v.size,
		replayable: v.replayable,
	}
}

// Concat joins multiple views sequentially.
// All values from the first view are yielded before the second, etc.
func Concat[T any](views ...*View[T]) *View[T] {
	size, replayable := 0, true
	for _, v := range views {
		replayable = replayable && v.replayable
		switch {
		case size < 0 || v.size < 0:
			size = unknownSize
		case size == infiniteSize || v.size == infiniteSize || size > infiniteSize-v.size:
			size = infiniteSize
		default:
			size += v.size
		}
	}
	return &View[T]{
		create: func(ctx context.Context) Cursor[T] {
			cursors := make([]Cursor[T], len(views))
			for i, v := range views {
				cursors[i] = v.create(ctx)
			}
			return &concatCursor[T]{cursors: cursors}
		},
		size:       size,
		replayable: replayable,
	}
}

// TakeWhile yields values while fn holds and stops at the first value that
// fails it. That value is consumed from the upstream cursor and discarded.
func TakeWhile[T any](v *View[T], fn func(T) bool) *View[T] {
	return &View[T]{
		create: func(ctx context.Context) Cursor[T] {
			return &takeWhileCursor[T]{source: v.create(ctx), fn: fn}
		},
		size:       unknownSize,
		replayable: v.replayable,
	}
}

// DropWhile skips values while fn holds, then yields the rest.
func DropWhile[T any](v *View[T], fn func(T) bool) *View[T] {
	return &View[T]{
		create: func(ctx context.Context) Cursor[T] {
			return &dropWhileCursor[T]{source: v.create(ctx), fn: fn}
		},
		size:       unknownSize,
		replayable: v.replayable,
	}
}

// Take yields at most n values.
func Take[T any](v *View[T], n int) *View[T] {
	n = max(n, 0)
	size := n
	if v.size >= 0 && v.size < n {
		size = v.size
	} else if v.size < 0 {
		size = unknownSize
	}
	return &View[T]{
		create: func(ctx context.Context) Cursor[T] {
			return &takeCursor[T]{source: v.create(ctx), remaining: n}
		},
		size:       size,
		replayable: v.replayable,
	}
}

// Drop skips the first n values.
func Drop[T any](v *View[T], n int) *View[T] {
	n = max(n, 0)
	size := v.size
	if size >= 0 && size != infiniteSize {
		size = max(size-n, 0)
	}
	return &View[T]{
		create: func(ctx context.Context) Cursor[T] {
			return &dropCursor[T]{source: v.create(ctx), skip: n}
		},
		size:       size,
		replayable: v.replayable,
	}
}

// --- Cursor implementations ---

type mapCursor[I, O any] struct {
	source Cursor[I]
	fn     func(context.Context, I) (O, error)
}

func (c *mapCursor[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := c.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (c *mapCursor[I, O]) Close() error { return c.source.Close() }

type flatMapCursor[I, O any] struct {
	source  Cursor[I]
	fn      func(context.Context, I) (*View[O], error)
	current Cursor[O]
}

func (c *flatMapCursor[I, O]) Next(ctx context.Context) (result O, ok bool, err error) {
	for {
		if c.current != nil {
			val, ok, err := c.current.Next(ctx)
			if err != nil {
				var zero O
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = c.current.Close()
			c.current = nil
		}
		in, ok, err := c.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		inner, err := c.fn(ctx, in)
		if err != nil {
			var zero O
			return zero, false, err
		}
		c.current = inner.create(ctx)
	}
}

func (c *flatMapCursor[I, O]) Close() error {
	if c.current != nil {
		_ = c.current.Close()
	}
	return c.source.Close()
}

type filterCursor[T any] struct {
	source Cursor[T]
	fn     func(T) bool
}

func (c *filterCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := c.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if c.fn(val) {
			return val, true, nil
		}
	}
}

func (c *filterCursor[T]) Close() error { return c.source.Close() }

type tapCursor[T any] struct {
	source Cursor[T]
	fn     func(context.Context, T) error
}

func (c *tapCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := c.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (c *tapCursor[T]) Close() error { return c.source.Close() }

type concatCursor[T any] struct {
	cursors []Cursor[T]
	index   int
}

func (c *concatCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for c.index < len(c.cursors) {
		val, ok, err := c.cursors[c.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		c.index++
	}
	var zero T
	return zero, false, nil
}

func (c *concatCursor[T]) Close() error {
	var firstErr error
	for _, cur := range c.cursors {
		if err := cur.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type takeWhileCursor[T any] struct {
	source Cursor[T]
	fn     func(T) bool
	done   bool
}

func (c *takeWhileCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	var zero T
	if c.done {
		return zero, false, nil
	}
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		c.done = true
		return zero, false, err
	}
	if !c.fn(val) {
		c.done = true
		return zero, false, nil
	}
	return val, true, nil
}

func (c *takeWhileCursor[T]) Close() error { return c.source.Close() }

type dropWhileCursor[T any] struct {
	source  Cursor[T]
	fn      func(T) bool
	dropped bool
}

func (c *dropWhileCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for {
		val, ok, err := c.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if c.dropped || !c.fn(val) {
			c.dropped = true
			return val, true, nil
		}
	}
}

func (c *dropWhileCursor[T]) Close() error { return c.source.Close() }

type takeCursor[T any] struct {
	source    Cursor[T]
	remaining int
}

func (c *takeCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if c.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := c.source.Next(ctx)
	if err != nil || !ok {
		c.remaining = 0
		return val, false, err
	}
	c.remaining--
	return val, true, nil
}

func (c *takeCursor[T]) Close() error { return c.source.Close() }

type dropCursor[T any] struct {
	source Cursor[T]
	skip   int
}

func (c *dropCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	for ; c.skip > 0; c.skip-- {
		if _, ok, err := c.source.Next(ctx); err != nil || !ok {
			c.skip = 0
			var zero T
			return zero, false, err
		}
	}
	return c.source.Next(ctx)
}

func (c *dropCursor[T]) Close() error { return c.source.Close() }
