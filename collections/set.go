package collections

import (
	"iter"
	"maps"
)

// Set is an unordered collection of distinct values. The zero value is an
// empty set.
type Set[T comparable] struct {
	m map[T]struct{}
}

// FromSeq builds a new set holding every value of seq. The receiver is not
// modified, so it may be the zero value.
func (Set[T]) FromSeq(seq iter.Seq[T]) Set[T] {
	out := Set[T]{m: make(map[T]struct{})}
	for v := range seq {
		out.m[v] = struct{}{}
	}
	return out
}

// Add inserts v and reports whether it was absent.
func (s *Set[T]) Add(v T) bool {
	if s.m == nil {
		s.m = make(map[T]struct{})
	}
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

func (s Set[T]) Contains(v T) bool {
	_, ok := s.m[v]
	return ok
}

func (s Set[T]) Len() int { return len(s.m) }

// All iterates the values in no particular order.
func (s Set[T]) All() iter.Seq[T] {
	return maps.Keys(s.m)
}
