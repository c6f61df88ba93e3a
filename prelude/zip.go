package prelude

import (
	"context"
	"fmt"
)

// Pair is a 2-tuple produced by Zip, Enumerate, and Pairwise.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// Triple is a 3-tuple produced by Zip3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Zip combines a and b in lockstep. It ends as soon as either input ends;
// every step advances both cursors, and a value already pulled from the
// longer input when the shorter one ends is discarded.
func Zip[A, B any](a *View[A], b *View[B]) *View[Pair[A, B]] {
	return &View[Pair[A, B]]{
		create: func(ctx context.Context) Cursor[Pair[A, B]] {
			return &zipCursor[Pair[A, B]]{
				cursors: []stepper{cursorStepper(a.create(ctx)), cursorStepper(b.create(ctx))},
				build: func(vals []any) Pair[A, B] {
					return Pair[A, B]{First: as[A](vals[0]), Second: as[B](vals[1])}
				},
			}
		},
		size:       shortest(a.size, b.size),
		replayable: a.replayable && b.replayable,
	}
}

// Zip3 combines three views in lockstep with the same termination rule as Zip.
func Zip3[A, B, C any](a *View[A], b *View[B], c *View[C]) *View[Triple[A, B, C]] {
	return &View[Triple[A, B, C]]{
		create: func(ctx context.Context) Cursor[Triple[A, B, C]] {
			return &zipCursor[Triple[A, B, C]]{
				cursors: []stepper{
					cursorStepper(a.create(ctx)),
					cursorStepper(b.create(ctx)),
					cursorStepper(c.create(ctx)),
				},
				build: func(vals []any) Triple[A, B, C] {
					return Triple[A, B, C]{First: as[A](vals[0]), Second: as[B](vals[1]), Third: as[C](vals[2])}
				},
			}
		},
		size:       shortest(a.size, b.size, c.size),
		replayable: a.replayable && b.replayable && c.replayable,
	}
}

// ZipAll combines any number of same-typed views in lockstep, yielding one
// slice per step with the i-th element taken from the i-th view. It ends as
// soon as any view ends. With no views it is empty.
func ZipAll[T any](views ...*View[T]) *View[[]T] {
	sizes := make([]int, len(views))
	replayable := true
	for i, v := range views {
		sizes[i] = v.size
		replayable = replayable && v.replayable
	}
	size := shortest(sizes...)
	if len(views) == 0 {
		size = 0
	}
	return &View[[]T]{
		create: func(ctx context.Context) Cursor[[]T] {
			steppers := make([]stepper, len(views))
			for i, v := range views {
				steppers[i] = cursorStepper(v.create(ctx))
			}
			return &zipCursor[[]T]{
				cursors: steppers,
				build: func(vals []any) []T {
					out := make([]T, len(vals))
					for i, v := range vals {
						out[i] = as[T](v)
					}
					return out
				},
			}
		},
		size:       size,
		replayable: replayable,
	}
}

// shortest returns the combined size hint of views zipped together.
func shortest(sizes ...int) int {
	out := infiniteSize
	for _, s := range sizes {
		if s < 0 {
			return unknownSize
		}
		out = min(out, s)
	}
	return out
}

// stepper erases the element type of a constituent cursor so one zip cursor
// can drive inputs of different types.
type stepper struct {
	next  func(ctx context.Context) (any, bool, error)
	close func() error
}

func cursorStepper[T any](c Cursor[T]) stepper {
	return stepper{
		next: func(ctx context.Context) (any, bool, error) {
			v, ok, err := c.Next(ctx)
			return v, ok, err
		},
		close: c.Close,
	}
}

// as recovers a value erased by a stepper. A nil interface value maps back to
// the zero value of T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}

type zipCursor[T any] struct {
	cursors []stepper
	build   func([]any) T
	done    bool
}

func (c *zipCursor[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	var zero T
	if c.done || len(c.cursors) == 0 {
		c.done = true
		return zero, false, nil
	}
	vals := make([]any, len(c.cursors))
	ended := false
	for i, s := range c.cursors {
		v, ok, err := s.next(ctx)
		if err != nil {
			c.done = true
			return zero, false, err
		}
		if !ok {
			ended = true
		}
		vals[i] = v
	}
	if ended {
		c.done = true
		return zero, false, nil
	}
	return c.build(vals), true, nil
}

func (c *zipCursor[T]) Close() error {
	var firstErr error
	for _, s := range c.cursors {
		if err := s.close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
