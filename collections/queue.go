package collections

import (
	"iter"
	"math/bits"
)

// Queue is a FIFO queue on a ring buffer whose capacity is always a power
// of two. The zero value is an empty queue.
type Queue[T any] struct {
	buf  []T
	head int
	size int
}

// Assign discards the current contents and fills the queue from seq.
func (q *Queue[T]) Assign(seq iter.Seq[T]) {
	clear(q.buf)
	q.head, q.size = 0, 0
	for v := range seq {
		q.Push(v)
	}
}

// Push adds v at the back.
func (q *Queue[T]) Push(v T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)&(len(q.buf)-1)] = v
	q.size++
}

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.size == 0 {
		return zero, false
	}
	v := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) & (len(q.buf) - 1)
	q.size--
	return v, true
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.head], true
}

func (q *Queue[T]) Len() int { return q.size }

// All iterates front to back without removing anything.
func (q *Queue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range q.size {
			if !yield(q.buf[(q.head+i)&(len(q.buf)-1)]) {
				return
			}
		}
	}
}

func (q *Queue[T]) grow() {
	capacity := 1
	if q.size > 0 {
		capacity = 1 << bits.Len(uint(q.size))
	}
	buf := make([]T, capacity)
	if q.head+q.size <= len(q.buf) {
		copy(buf, q.buf[q.head:q.head+q.size])
	} else {
		n := copy(buf, q.buf[q.head:])
		copy(buf[n:], q.buf[:(q.head+q.size)&(len(q.buf)-1)])
	}
	q.buf = buf
	q.head = 0
}
