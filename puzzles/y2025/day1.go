package y2025

import (
	"context"
	"io"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/util"
)

const dialSize = 100

// parseTurn reads "R12" as 12 and "L12" as -12.
func parseTurn(_ context.Context, line string) (int, error) {
	if line == "" {
		return 0, errors.InvalidInput(line, "empty rotation")
	}
	n, err := util.Atoi(line[1:])
	if err != nil {
		return 0, err
	}
	switch line[0] {
	case 'R':
		return n, nil
	case 'L':
		return -n, nil
	}
	return 0, errors.InvalidInput(line, "rotation must start with L or R")
}

type dial struct {
	position int
	atZero   int
	passed   int
}

func (d dial) turn(x int) dial {
	d.passed += max(x/dialSize, -x/dialSize)
	x %= dialSize
	if d.position != 0 && (d.position+x > dialSize || d.position+x < 0) {
		d.passed++
	}
	d.position = ((d.position+x)%dialSize + dialSize) % dialSize
	if d.position == 0 {
		d.atZero++
	}
	return d
}

// Day1 turns the safe dial starting at 50. Part 1 counts the rotations that
// leave it at 0; part 2 counts every click that lands on or passes 0.
func Day1(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	d, err := prelude.Reduce(ctx, prelude.Map(prelude.Lines(in), parseTurn), dial{position: 50}, dial.turn)
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: d.atZero, Part2: d.atZero + d.passed}, nil
}
