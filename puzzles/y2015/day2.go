package y2015

import (
	"context"
	"io"
	"slices"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/util"
)

type box [3]int

func parseBox(_ context.Context, line string) (box, error) {
	dims, err := util.ParseInts(line, "x")
	if err != nil {
		return box{}, err
	}
	if len(dims) != 3 {
		return box{}, errors.InvalidInput(line, "expected LxWxH")
	}
	slices.Sort(dims)
	return box(dims), nil
}

// paper is the surface area plus the area of the smallest side.
func (b box) paper() int {
	l, w, h := b[0], b[1], b[2]
	return 2*l*w + 2*w*h + 2*h*l + l*w
}

// ribbon is the smallest perimeter plus the volume.
func (b box) ribbon() int {
	return 2*(b[0]+b[1]) + b[0]*b[1]*b[2]
}

// Day2 totals the wrapping paper and ribbon for a list of presents.
func Day2(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	boxes := prelude.Map(prelude.Lines(in), parseBox)
	return prelude.Reduce(ctx, boxes, puzzles.Answer{}, func(a puzzles.Answer, b box) puzzles.Answer {
		a.Part1 += b.paper()
		a.Part2 += b.ribbon()
		return a
	})
}
