package y2025

import (
	"bufio"
	"cmp"
	"context"
	"io"
	"slices"

	"github.com/samber/lo"

	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/util"
)

// freshRange is an inclusive range of ingredient ids.
type freshRange struct{ begin, end int }

func parseFreshRange(_ context.Context, line string) (freshRange, error) {
	a, b, err := util.ParseRange(line)
	return freshRange{min(a, b), max(a, b)}, err
}

func (r freshRange) contains(id int) bool { return id >= r.begin && id <= r.end }
func (r freshRange) size() int           { return r.end - r.begin + 1 }

func parseID(_ context.Context, line string) (int, error) { return util.Atoi(line) }

// merge sorts the ranges and joins overlapping ones.
func merge(ranges []freshRange) []freshRange {
	sorted := slices.SortedFunc(slices.Values(ranges), func(a, b freshRange) int {
		return cmp.Compare(a.begin, b.begin)
	})
	var out []freshRange
	for _, r := range sorted {
		if n := len(out); n > 0 && out[n-1].end >= r.begin {
			out[n-1].end = max(out[n-1].end, r.end)
			continue
		}
		out = append(out, r)
	}
	return out
}

// Day5 reads the fresh ingredient ranges, a blank line and the available
// ids. Part 1 counts the available ids that are fresh; part 2 counts every
// id the ranges cover.
func Day5(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	br := bufio.NewReader(in)
	notBlank := func(line string) bool { return !puzzles.IsBlank(line) }

	ranges, err := prelude.Collect(ctx, prelude.Map(prelude.TakeWhile(prelude.Lines(br), notBlank), parseFreshRange))
	if err != nil {
		return puzzles.Answer{}, err
	}
	ids, err := prelude.Collect(ctx, prelude.Map(prelude.DropWhile(prelude.Lines(br), puzzles.IsBlank), parseID))
	if err != nil {
		return puzzles.Answer{}, err
	}

	fresh := lo.CountBy(ids, func(id int) bool {
		return lo.SomeBy(ranges, func(r freshRange) bool { return r.contains(id) })
	})
	covered, err := prelude.Sum(ctx, prelude.Map(prelude.FromSlice(merge(ranges)), func(_ context.Context, r freshRange) (int, error) {
		return r.size(), nil
	}))
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: fresh, Part2: covered}, nil
}
