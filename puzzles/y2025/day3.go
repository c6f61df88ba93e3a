package y2025

import (
	"context"
	"io"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
)

func digit(_ context.Context, r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, errors.InvalidInput(string(r), "not a digit")
	}
	return int(r - '0'), nil
}

func parseBank(ctx context.Context, line string) ([]int, error) {
	return prelude.Collect(ctx, prelude.Map(prelude.Runes(line), digit))
}

// joltage is the largest number formed by k of the bank's digits kept in
// order. A bank shorter than k uses every digit.
func joltage(bank []int, k int) int {
	drop := len(bank) - k
	kept := make([]int, 0, len(bank))
	for _, d := range bank {
		for len(kept) > 0 && drop > 0 && kept[len(kept)-1] < d {
			kept = kept[:len(kept)-1]
			drop--
		}
		kept = append(kept, d)
	}
	kept = kept[:min(k, len(kept))]
	n, _ := prelude.Reduce(context.Background(), prelude.FromSlice(kept), 0, func(acc, d int) int {
		return 10*acc + d
	})
	return n
}

// Day3 sums the maximum joltage of every battery bank, turning on two
// batteries per bank and then twelve.
func Day3(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	banks, err := prelude.Collect(ctx, prelude.Map(prelude.Lines(in), parseBank))
	if err != nil {
		return puzzles.Answer{}, err
	}
	total := func(k int) (int, error) {
		return prelude.Sum(ctx, prelude.Map(prelude.FromSlice(banks), func(_ context.Context, b []int) (int, error) {
			return joltage(b, k), nil
		}))
	}
	part1, err := total(2)
	if err != nil {
		return puzzles.Answer{}, err
	}
	part2, err := total(12)
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: part1, Part2: part2}, nil
}
