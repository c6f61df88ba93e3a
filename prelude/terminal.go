package prelude

import (
	"context"

	"golang.org/x/exp/constraints"

	"github.com/kbukum/prelude/errors"
)

// Number is an element type with an additive and multiplicative identity.
type Number interface {
	constraints.Integer | constraints.Float
}

// Reduce folds v left to right: acc = fn(acc, e) for each element, starting
// from init. An empty view yields init. The first upstream error stops the
// fold and is returned.
func Reduce[T, R any](ctx context.Context, v *View[T], init R, fn func(R, T) R) (R, error) {
	cur := v.create(ctx)
	defer cur.Close()
	acc := init
	for {
		val, ok, err := cur.Next(ctx)
		if err != nil {
			var zero R
			return zero, err
		}
		if !ok {
			return acc, nil
		}
		acc = fn(acc, val)
	}
}

// Sum adds up the elements of v. An empty view sums to 0.
func Sum[T Number](ctx context.Context, v *View[T]) (T, error) {
	return Reduce(ctx, v, T(0), func(acc, x T) T { return acc + x })
}

// Product multiplies the elements of v. An empty view multiplies to 1.
func Product[T Number](ctx context.Context, v *View[T]) (T, error) {
	return Reduce(ctx, v, T(1), func(acc, x T) T { return acc * x })
}

// Count returns the number of elements in v.
func Count[T any](ctx context.Context, v *View[T]) (int, error) {
	return Reduce(ctx, v, 0, func(n int, _ T) int { return n + 1 })
}

// ForEach calls fn for each element in order. It stops at, and returns, the
// first error from fn or from upstream.
func ForEach[T any](ctx context.Context, v *View[T], fn func(context.Context, T) error) error {
	cur := v.create(ctx)
	defer cur.Close()
	for {
		val, ok, err := cur.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// Front returns the first element of v, consuming only that element.
// An empty view yields an EMPTY_SEQUENCE error.
func Front[T any](ctx context.Context, v *View[T]) (T, error) {
	cur := v.create(ctx)
	defer cur.Close()
	val, ok, err := cur.Next(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	if !ok {
		var zero T
		return zero, errors.EmptySequence()
	}
	return val, nil
}
