package prelude

import (
	"context"
	"fmt"
)

// Option holds either a value or nothing.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool { return o.ok }

// OrElse returns the value, or fallback when absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// CollectOptional unwraps every element of v into a slice. If any element is
// absent it returns None immediately: nothing after the first absent element
// is pulled from upstream. A view that simply ends is complete, so an empty
// view yields Some of an empty slice. The error is reserved for upstream
// failures and is never used to report absence.
func CollectOptional[T any](ctx context.Context, v *View[Option[T]]) (Option[[]T], error) {
	cur := v.create(ctx)
	defer cur.Close()
	n, _ := v.Len()
	out := make([]T, 0, n)
	for {
		opt, ok, err := cur.Next(ctx)
		if err != nil {
			return None[[]T](), err
		}
		if !ok {
			return Some(out), nil
		}
		val, present := opt.Get()
		if !present {
			return None[[]T](), nil
		}
		out = append(out, val)
	}
}
