package prelude

import (
	"context"
	"fmt"
)

// Run is a maximal stretch of equivalent adjacent values: the first value
// of the stretch and how many values it spans.
type Run[T any] struct {
	Value T
	Count int
}

func (r Run[T]) String() string {
	return fmt.Sprintf("(%v, %d)", r.Value, r.Count)
}

// ChunkBy splits v into groups of adjacent values. Two neighbours share a
// group iff eq(left, right) holds; eq is only ever applied to neighbours, so
// it does not need to be transitive. Groups are never empty and together
// reproduce v in order. eq is called exactly once per adjacent pair.
func ChunkBy[T any](v *View[T], eq func(a, b T) bool) *View[[]T] {
	return grouped(v, eq,
		func(first T) []T { return []T{first} },
		func(g []T, next T) []T { return append(g, next) },
	)
}

// RunLength collapses each run of equal adjacent values into (value, count).
func RunLength[T comparable](v *View[T]) *View[Run[T]] {
	return RunLengthFunc(v, func(a, b T) bool { return a == b })
}

// RunLengthFunc is RunLength with a caller-supplied equivalence. Counts are
// accumulated while the run is scanned; run members are not retained.
func RunLengthFunc[T any](v *View[T], eq func(a, b T) bool) *View[Run[T]] {
	return grouped(v, eq,
		func(first T) Run[T] { return Run[T]{Value: first, Count: 1} },
		func(r Run[T], _ T) Run[T] {
			r.Count++
			return r
		},
	)
}

func grouped[T, G any](v *View[T], eq func(a, b T) bool, start func(T) G, add func(G, T) G) *View[G] {
	return &View[G]{
		create: func(ctx context.Context) Cursor[G] {
			return &groupCursor[T, G]{source: v.create(ctx), eq: eq, start: start, add: add}
		},
		size:       unknownSize,
		replayable: v.replayable,
	}
}

// groupCursor keeps the first value of the next group after each group it
// returns, so every upstream value is pulled and compared exactly once.
type groupCursor[T, G any] struct {
	source  Cursor[T]
	eq      func(a, b T) bool
	start   func(T) G
	add     func(G, T) G
	pending T
	has     bool
	started bool
	done    bool
}

func (c *groupCursor[T, G]) Next(ctx context.Context) (result G, ok bool, err error) {
	var zero G
	if c.done {
		return zero, false, nil
	}
	if !c.started {
		c.started = true
		first, ok, err := c.source.Next(ctx)
		if err != nil || !ok {
			c.done = true
			return zero, false, err
		}
		c.pending, c.has = first, true
	}
	if !c.has {
		c.done = true
		return zero, false, nil
	}

	prev := c.pending
	group := c.start(prev)
	c.has = false
	for {
		val, ok, err := c.source.Next(ctx)
		if err != nil {
			c.done = true
			return zero, false, err
		}
		if !ok {
			break
		}
		if !c.eq(prev, val) {
			c.pending, c.has = val, true
			break
		}
		group = c.add(group, val)
		prev = val
	}
	return group, true, nil
}

func (c *groupCursor[T, G]) Close() error { return c.source.Close() }
