package y2015

import (
	"context"
	"io"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
)

func floorStep(_ context.Context, r rune) (int, error) {
	switch r {
	case '(':
		return 1, nil
	case ')':
		return -1, nil
	}
	return 0, errors.InvalidInput(string(r), "expected ( or )")
}

// Day1 follows Santa's floor instructions. Part 2 is the 1-based position of
// the first step into the basement, or 0 if he never gets there.
func Day1(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	line, err := puzzles.FirstLine(ctx, in)
	if err != nil {
		return puzzles.Answer{}, err
	}
	steps := prelude.Map(prelude.Runes(line), floorStep)

	final, err := prelude.Sum(ctx, steps)
	if err != nil {
		return puzzles.Answer{}, err
	}

	floor := 0
	basement := prelude.Filter(prelude.Enumerate(steps), func(p prelude.Pair[int, int]) bool {
		floor += p.Second
		return floor < 0
	})
	first, err := prelude.Front(ctx, basement)
	switch {
	case errors.IsCode(err, errors.ErrCodeEmptySequence):
		return puzzles.Answer{Part1: final}, nil
	case err != nil:
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: final, Part2: first.First + 1}, nil
}
