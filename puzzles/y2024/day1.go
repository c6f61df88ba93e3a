package y2024

import (
	"context"
	"io"
	"slices"

	"github.com/samber/lo"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/util"
)

func parsePair(_ context.Context, line string) (prelude.Pair[int, int], error) {
	nums, err := util.ParseInts(line, "")
	if err != nil {
		return prelude.Pair[int, int]{}, err
	}
	if len(nums) != 2 {
		return prelude.Pair[int, int]{}, errors.InvalidInput(line, "expected two location ids")
	}
	return prelude.Pair[int, int]{First: nums[0], Second: nums[1]}, nil
}

// Day1 reconciles two lists of location ids: the total distance between the
// sorted lists, then the similarity score of the left list against the
// right.
func Day1(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	var left, right []int
	split := prelude.Tap(prelude.Map(prelude.Lines(in), parsePair), func(_ context.Context, p prelude.Pair[int, int]) error {
		left = append(left, p.First)
		right = append(right, p.Second)
		return nil
	})
	if _, err := prelude.Count(ctx, split); err != nil {
		return puzzles.Answer{}, err
	}
	slices.Sort(left)
	slices.Sort(right)

	distances := prelude.Map(prelude.Zip(prelude.FromSlice(left), prelude.FromSlice(right)),
		func(_ context.Context, p prelude.Pair[int, int]) (int, error) {
			return max(p.First-p.Second, p.Second-p.First), nil
		})
	part1, err := prelude.Sum(ctx, distances)
	if err != nil {
		return puzzles.Answer{}, err
	}

	counts := lo.CountValues(right)
	part2, err := prelude.Sum(ctx, prelude.Map(prelude.FromSlice(left), func(_ context.Context, x int) (int, error) {
		return x * counts[x], nil
	}))
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: part1, Part2: part2}, nil
}
