package prelude

import (
	"context"
)

// Chunks splits v into consecutive slices of n values. The last slice holds
// whatever remains and may be shorter. n below 1 is treated as 1.
func Chunks[T any](v *View[T], n int) *View[[]T] {
	n = max(n, 1)
	size := v.size
	if size >= 0 && size != infiniteSize {
		size = (size + n - 1) / n
	}
	return &View[[]T]{
		create: func(ctx context.Context) Cursor[[]T] {
			return &chunksCursor[T]{source: v.create(ctx), size: n}
		},
		size:       size,
		replayable: v.replayable,
	}
}

type chunksCursor[T any] struct {
	source Cursor[T]
	size   int
	done   bool
}

func (c *chunksCursor[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if c.done {
		return nil, false, nil
	}

	batch := make([]T, 0, c.size)
	for len(batch) < c.size {
		val, ok, err := c.source.Next(ctx)
		if err != nil {
			c.done = true
			return nil, false, err
		}
		if !ok {
			c.done = true
			if len(batch) > 0 {
				return batch, true, nil
			}
			return nil, false, nil
		}
		batch = append(batch, val)
	}
	return batch, true, nil
}

func (c *chunksCursor[T]) Close() error { return c.source.Close() }
