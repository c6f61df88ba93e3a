package y2015

import (
	"context"
	"io"

	"github.com/kbukum/prelude/collections"
	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
)

type coord struct{ x, y int }

func (c coord) add(o coord) coord { return coord{c.x + o.x, c.y + o.y} }

var directions = map[rune]coord{
	'>': {1, 0},
	'<': {-1, 0},
	'^': {0, 1},
	'v': {0, -1},
}

func parseMove(_ context.Context, r rune) (coord, error) {
	m, ok := directions[r]
	if !ok {
		return coord{}, errors.InvalidInput(string(r), "no such direction")
	}
	return m, nil
}

// visited yields the starting house followed by every house reached by moves.
func visited(moves *prelude.View[coord]) *prelude.View[coord] {
	var pos coord
	return prelude.Concat(
		prelude.FromSlice([]coord{pos}),
		prelude.Map(moves, func(_ context.Context, m coord) (coord, error) {
			pos = pos.add(m)
			return pos, nil
		}),
	)
}

// Day3 counts the houses that receive at least one present, first from
// Santa alone and then from Santa and Robo-Santa taking alternate moves.
func Day3(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	line, err := puzzles.FirstLine(ctx, in)
	if err != nil {
		return puzzles.Answer{}, err
	}
	moves, err := prelude.Collect(ctx, prelude.Map(prelude.Runes(line), parseMove))
	if err != nil {
		return puzzles.Answer{}, err
	}

	houses, err := prelude.Into[collections.Set[coord]](ctx, visited(prelude.FromSlice(moves)))
	if err != nil {
		return puzzles.Answer{}, err
	}

	var santa, robo coord
	shared := collections.Set[coord]{}
	shared.Add(coord{})
	err = prelude.ForEach(ctx, prelude.Enumerate(prelude.FromSlice(moves)), func(_ context.Context, p prelude.Pair[int, coord]) error {
		if p.First%2 == 0 {
			santa = santa.add(p.Second)
			shared.Add(santa)
		} else {
			robo = robo.add(p.Second)
			shared.Add(robo)
		}
		return nil
	})
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: houses.Len(), Part2: shared.Len()}, nil
}
