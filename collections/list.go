package collections

import (
	"iter"
	"slices"
)

// List is a growable array. The zero value is an empty list.
type List[T any] struct {
	data []T
}

// Append adds v at the end.
func (l *List[T]) Append(v T) {
	l.data = append(l.data, v)
}

// Reserve makes room for at least n more elements without reallocating.
func (l *List[T]) Reserve(n int) {
	l.data = slices.Grow(l.data, n)
}

// Get returns the element at index i.
func (l *List[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(l.data) {
		var zero T
		return zero, false
	}
	return l.data[i], true
}

func (l *List[T]) Len() int { return len(l.data) }

// Cap reports how many elements fit before the next reallocation.
func (l *List[T]) Cap() int { return cap(l.data) }

// All iterates the elements in insertion order.
func (l *List[T]) All() iter.Seq[T] {
	return slices.Values(l.data)
}

// Slice returns a copy of the elements.
func (l *List[T]) Slice() []T {
	return slices.Clone(l.data)
}
