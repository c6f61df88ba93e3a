package prelude

import (
	"context"
	"errors"
)

var errBoom = errors.New("boom")

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func strSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// countingCursor wraps a slice and records how many values were pulled.
type countingCursor[T any] struct {
	items  []T
	pulled int
	closed bool
}

func (c *countingCursor[T]) Next(_ context.Context) (T, bool, error) {
	if c.pulled >= len(c.items) {
		var zero T
		return zero, false, nil
	}
	v := c.items[c.pulled]
	c.pulled++
	return v, true, nil
}

func (c *countingCursor[T]) Close() error {
	c.closed = true
	return nil
}

// failingCursor yields items and then fails with err.
type failingCursor[T any] struct {
	items []T
	index int
	err   error
}

func (c *failingCursor[T]) Next(_ context.Context) (T, bool, error) {
	if c.index < len(c.items) {
		v := c.items[c.index]
		c.index++
		return v, true, nil
	}
	var zero T
	return zero, false, c.err
}

func (c *failingCursor[T]) Close() error { return nil }

func failAfter[T any](items ...T) *View[T] {
	return From[T](&failingCursor[T]{items: items, err: errBoom})
}
