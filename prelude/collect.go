package prelude

import (
	"context"
	"fmt"
	"iter"
	"slices"

	"github.com/kbukum/prelude/errors"
)

// Strategy identifies how Into fills a container shape.
type Strategy int

const (
	// StrategyUnsupported means the shape offers no way to be filled.
	StrategyUnsupported Strategy = iota
	// StrategyConstruct builds the container in one step from the whole sequence.
	StrategyConstruct
	// StrategyAssign replaces the contents of an empty container in bulk.
	StrategyAssign
	// StrategyAppend appends elements one at a time, reserving capacity first
	// when both the size and a Reserve method are available.
	StrategyAppend
)

func (s Strategy) String() string {
	switch s {
	case StrategyConstruct:
		return "construct"
	case StrategyAssign:
		return "assign"
	case StrategyAppend:
		return "append"
	default:
		return "unsupported"
	}
}

// RangeConstructor is implemented by container shapes that can build a new,
// fully populated container from a sequence. The receiver is the zero value.
type RangeConstructor[C, T any] interface {
	FromSeq(seq iter.Seq[T]) C
}

// Assigner is implemented by container shapes that can replace their
// contents in bulk.
type Assigner[T any] interface {
	Assign(seq iter.Seq[T])
}

// Appender is implemented by container shapes that grow one element at a time.
type Appender[T any] interface {
	Append(v T)
}

// Reserver is optionally implemented by Appender shapes that can
// preallocate room for n elements.
type Reserver interface {
	Reserve(n int)
}

// ShapeOf reports the strategy Into uses for container type C holding T.
// Capabilities are tried in order: built-in slice or RangeConstructor on C,
// then Assigner on *C, then Appender on *C.
func ShapeOf[C, T any]() Strategy {
	var out C
	if _, ok := any(&out).(*[]T); ok {
		return StrategyConstruct
	}
	if _, ok := any(out).(RangeConstructor[C, T]); ok {
		return StrategyConstruct
	}
	if _, ok := any(&out).(Assigner[T]); ok {
		return StrategyAssign
	}
	if _, ok := any(&out).(Appender[T]); ok {
		return StrategyAppend
	}
	return StrategyUnsupported
}

// Into drains v into a new container of type C, keeping iteration order.
// C is a value type whose zero value is an empty container; the strategy is
// chosen by ShapeOf. If upstream fails, no container is returned.
func Into[C, T any](ctx context.Context, v *View[T]) (C, error) {
	var out C
	strategy := ShapeOf[C, T]()
	if strategy == StrategyUnsupported {
		return out, errors.UnsupportedShape(fmt.Sprintf("%T", out))
	}

	cur := v.create(ctx)
	defer cur.Close()
	var failure error
	var seq iter.Seq[T] = func(yield func(T) bool) {
		for {
			val, ok, err := cur.Next(ctx)
			if err != nil {
				failure = err
				return
			}
			if !ok || !yield(val) {
				return
			}
		}
	}

	switch strategy {
	case StrategyConstruct:
		if s, ok := any(&out).(*[]T); ok {
			n, _ := v.Len()
			*s = slices.AppendSeq(make([]T, 0, n), seq)
		} else {
			out = any(out).(RangeConstructor[C, T]).FromSeq(seq)
		}
	case StrategyAssign:
		any(&out).(Assigner[T]).Assign(seq)
	case StrategyAppend:
		app := any(&out).(Appender[T])
		if n, ok := v.Len(); ok {
			if r, ok := any(&out).(Reserver); ok {
				r.Reserve(n)
			}
		}
		for val := range seq {
			app.Append(val)
		}
	}

	if failure != nil {
		var zero C
		return zero, failure
	}
	return out, nil
}

// Collect drains v into a slice, keeping iteration order.
func Collect[T any](ctx context.Context, v *View[T]) ([]T, error) {
	return Into[[]T](ctx, v)
}
