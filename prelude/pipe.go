package prelude

import (
	"context"
)

// Stage turns one view into another without iterating anything.
type Stage[I, O any] func(*View[I]) *View[O]

// Sink drives a view to completion and produces a result.
type Sink[T, R any] func(context.Context, *View[T]) (R, error)

// Pipe applies a single stage to v. It exists so that long compositions read
// left to right: Pipe2(src, a, b) instead of b(a(src)).
func Pipe[I, O any](v *View[I], s Stage[I, O]) *View[O] {
	return s(v)
}

// Pipe2 applies two stages in order.
func Pipe2[I, M, O any](v *View[I], a Stage[I, M], b Stage[M, O]) *View[O] {
	return b(a(v))
}

// Pipe3 applies three stages in order.
func Pipe3[I, M, N, O any](v *View[I], a Stage[I, M], b Stage[M, N], c Stage[N, O]) *View[O] {
	return c(b(a(v)))
}

// Drive feeds v into sink.
func Drive[T, R any](ctx context.Context, v *View[T], sink Sink[T, R]) (R, error) {
	return sink(ctx, v)
}

// Then applies type-preserving stages in order.
func (v *View[T]) Then(stages ...Stage[T, T]) *View[T] {
	out := v
	for _, s := range stages {
		out = s(out)
	}
	return out
}

// --- Stage builders ---

// Mapping is the stage form of Map.
func Mapping[I, O any](fn func(context.Context, I) (O, error)) Stage[I, O] {
	return func(v *View[I]) *View[O] { return Map(v, fn) }
}

// Filtering is the stage form of Filter.
func Filtering[T any](fn func(T) bool) Stage[T, T] {
	return func(v *View[T]) *View[T] { return Filter(v, fn) }
}

// Enumerating is the stage form of Enumerate.
func Enumerating[T any]() Stage[T, Pair[int, T]] {
	return Enumerate[T]
}

// Pairing is the stage form of Pairwise.
func Pairing[T any]() Stage[T, Pair[T, T]] {
	return Pairwise[T]
}

// ChunkingBy is the stage form of ChunkBy.
func ChunkingBy[T any](eq func(a, b T) bool) Stage[T, []T] {
	return func(v *View[T]) *View[[]T] { return ChunkBy(v, eq) }
}

// RunLengthEncoding is the stage form of RunLength.
func RunLengthEncoding[T comparable]() Stage[T, Run[T]] {
	return RunLength[T]
}

// --- Sink builders ---

// Summing is the sink form of Sum.
func Summing[T Number]() Sink[T, T] {
	return Sum[T]
}

// Multiplying is the sink form of Product.
func Multiplying[T Number]() Sink[T, T] {
	return Product[T]
}

// Reducing is the sink form of Reduce.
func Reducing[T, R any](init R, fn func(R, T) R) Sink[T, R] {
	return func(ctx context.Context, v *View[T]) (R, error) {
		return Reduce(ctx, v, init, fn)
	}
}

// Collecting is the sink form of Collect.
func Collecting[T any]() Sink[T, []T] {
	return Collect[T]
}

// ForEaching is the sink form of ForEach. Its result carries no information.
func ForEaching[T any](fn func(context.Context, T) error) Sink[T, struct{}] {
	return func(ctx context.Context, v *View[T]) (struct{}, error) {
		return struct{}{}, ForEach(ctx, v, fn)
	}
}
