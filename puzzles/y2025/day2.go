package y2025

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/util"
)

type idRange struct{ lo, hi int }

func parseRanges(line string) ([]idRange, error) {
	var out []idRange
	for field := range strings.SplitSeq(strings.TrimSpace(line), ",") {
		lo, hi, err := util.ParseRange(field)
		if err != nil {
			return nil, err
		}
		if lo < 1 || hi < lo {
			return nil, errors.InvalidInput(field, "expected 0 < lo <= hi")
		}
		out = append(out, idRange{lo, hi})
	}
	return out, nil
}

// ids yields every id in r.
func (r idRange) ids() *prelude.View[int] {
	return prelude.Take(prelude.Iota(r.lo), r.hi-r.lo+1)
}

// repeatsAt reports whether s is its first k digits repeated at least twice.
func repeatsAt(s string, k int) bool {
	if len(s)%k != 0 || len(s) == k {
		return false
	}
	return strings.Repeat(s[:k], len(s)/k) == s
}

// doubled reports ids made of one digit sequence written twice.
func doubled(n int) bool {
	s := strconv.Itoa(n)
	return len(s)%2 == 0 && repeatsAt(s, len(s)/2)
}

// repeated reports ids made of one digit sequence written two or more times.
func repeated(n int) bool {
	s := strconv.Itoa(n)
	for k := 1; k <= len(s)/2; k++ {
		if repeatsAt(s, k) {
			return true
		}
	}
	return false
}

// Day2 sums the invalid product ids found in the ranges on the first line.
func Day2(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	line, err := puzzles.FirstLine(ctx, in)
	if err != nil {
		return puzzles.Answer{}, err
	}
	ranges, err := parseRanges(line)
	if err != nil {
		return puzzles.Answer{}, err
	}
	all := prelude.FlatMap(prelude.FromSlice(ranges), func(_ context.Context, r idRange) (*prelude.View[int], error) {
		return r.ids(), nil
	})

	part1, err := prelude.Sum(ctx, prelude.Filter(all, doubled))
	if err != nil {
		return puzzles.Answer{}, err
	}
	part2, err := prelude.Sum(ctx, prelude.Filter(all, repeated))
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: part1, Part2: part2}, nil
}
