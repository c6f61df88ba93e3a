// Package prelude provides composable, single-pass lazy views over sequences.
//
// A View is an immutable description of how to produce elements; no work
// happens until a terminal operation (Reduce, Sum, ForEach, Collect, ...)
// creates a Cursor and pulls from it. Each Cursor is exclusively owned by the
// terminal that created it and is closed when the terminal returns.
//
// # Sources
//
//   - FromSlice, Runes: replayable in-memory sequences
//   - Lines: text lines read from an io.Reader (single-pass)
//   - Iota: infinite ascending counter
//   - From, FromFunc: wrap an existing Cursor or a Cursor factory
//
// # Views
//
//   - Zip, Zip3, ZipAll: lockstep tuples, ends when the shortest input ends
//   - Enumerate: (index, value) pairs
//   - Pairwise: adjacent pairs of a replayable view
//   - ChunkBy, RunLength: groups of adjacent equivalent elements
//   - Chunks: fixed-size slices
//   - Map, Filter, Tap, FlatMap, Concat, TakeWhile, DropWhile, Take, Drop
//
// # Terminals
//
//   - Reduce, Sum, Product, Count, Front, ForEach
//   - Collect, Into, CollectOptional
//
// Stage and Sink wrap the same operations as values so that Pipe, Pipe2,
// Pipe3 and Drive can compose them left to right.
//
// # Usage
//
//	lines := prelude.Lines(os.Stdin)
//	sizes := prelude.Map(lines, func(_ context.Context, s string) (int, error) {
//	    return len(s), nil
//	})
//	total, err := prelude.Sum(ctx, sizes)
//
// The same program written with Pipe:
//
//	total, err := prelude.Drive(ctx,
//	    prelude.Pipe(prelude.Lines(os.Stdin), prelude.Mapping(length)),
//	    prelude.Summing[int]())
package prelude
