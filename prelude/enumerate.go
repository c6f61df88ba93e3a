package prelude

import (
	"context"

	"github.com/kbukum/prelude/errors"
)

// Enumerate pairs each value of v with its zero-based position. It is Zip
// of an infinite counter with v, so it is exactly as long as v. The counter
// is the first input and is always advanced, and v is always the one that ends.
func Enumerate[T any](v *View[T]) *View[Pair[int, T]] {
	return Zip(Iota(0), v)
}

// Pairwise yields (v[i], v[i+1]) for every adjacent pair of v, so an input of
// n elements produces max(n-1, 0) pairs. It is Zip of v with v advanced by
// one, which needs two independent cursors: v must be replayable. Over a
// single-pass view (such as Lines) the cursor fails with NOT_REPLAYABLE;
// Collect such input into a slice first.
func Pairwise[T any](v *View[T]) *View[Pair[T, T]] {
	if !v.replayable {
		return &View[Pair[T, T]]{
			create: func(_ context.Context) Cursor[Pair[T, T]] {
				return &failedCursor[Pair[T, T]]{err: errors.NotReplayable("pairwise")}
			},
			size: unknownSize,
		}
	}
	return Zip(v, Drop(v, 1))
}

// failedCursor reports err once and is exhausted afterwards.
type failedCursor[T any] struct {
	err error
}

func (c *failedCursor[T]) Next(_ context.Context) (T, bool, error) {
	var zero T
	err := c.err
	c.err = nil
	return zero, false, err
}

func (c *failedCursor[T]) Close() error { return nil }
