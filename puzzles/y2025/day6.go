package y2025

import (
	"context"
	"io"
	"strings"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/util"
)

type operator func(context.Context, *prelude.View[int]) (int, error)

func parseOperator(_ context.Context, s string) (operator, error) {
	switch s {
	case "+":
		return prelude.Sum[int], nil
	case "*":
		return prelude.Product[int], nil
	}
	return nil, errors.InvalidInput(s, "operator must be + or *")
}

// worksheet splits the raw lines into the number rows and the operators on
// the last line.
func worksheet(ctx context.Context, lines []string) ([]string, []operator, error) {
	if len(lines) < 2 {
		return nil, nil, errors.InvalidInput("", "worksheet needs number rows and an operator row")
	}
	last := len(lines) - 1
	ops, err := prelude.Collect(ctx, prelude.Map(prelude.FromSlice(util.SplitFields(lines[last])), parseOperator))
	return lines[:last], ops, err
}

// solveAll applies each operator to its problem's numbers and sums the results.
func solveAll(ctx context.Context, ops []operator, problems *prelude.View[[]int]) (int, error) {
	results := prelude.Map(prelude.Zip(prelude.FromSlice(ops), problems),
		func(ctx context.Context, p prelude.Pair[operator, []int]) (int, error) {
			return p.First(ctx, prelude.FromSlice(p.Second))
		})
	return prelude.Sum(ctx, results)
}

// byRows reads each problem down a column of whitespace-separated numbers.
func byRows(_ context.Context, rows []string) (*prelude.View[[]int], error) {
	columns := make([]*prelude.View[int], 0, len(rows))
	for _, row := range rows {
		nums, err := util.ParseInts(row, "")
		if err != nil {
			return nil, err
		}
		columns = append(columns, prelude.FromSlice(nums))
	}
	return prelude.ZipAll(columns...), nil
}

// byColumns reads each number top to bottom down one character column.
// Problems are separated by an all-blank column.
func byColumns(ctx context.Context, rows []string) (*prelude.View[[]int], error) {
	groups := prelude.ChunkBy(prelude.FromSlice(util.Transpose(rows)), func(a, b string) bool {
		return (a == "") == (b == "")
	})
	problems := prelude.Filter(groups, func(g []string) bool { return g[0] != "" })
	parsed, err := prelude.Collect(ctx, prelude.Map(problems, func(_ context.Context, g []string) ([]int, error) {
		return util.ParseInts(strings.Join(g, " "), "")
	}))
	if err != nil {
		return nil, err
	}
	return prelude.FromSlice(parsed), nil
}

type reading func(context.Context, []string) (*prelude.View[[]int], error)

func solveWith(ctx context.Context, read reading, rows []string, ops []operator) (int, error) {
	problems, err := read(ctx, rows)
	if err != nil {
		return 0, err
	}
	if n, ok := problems.Len(); !ok || n != len(ops) {
		return 0, errors.InvalidInput("", "number of problems does not match the operators")
	}
	return solveAll(ctx, ops, problems)
}

// Day6 solves the cephalopod math worksheet, reading the numbers first by
// rows and then by character columns.
func Day6(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	lines, err := prelude.Collect(ctx, prelude.Lines(in))
	if err != nil {
		return puzzles.Answer{}, err
	}
	rows, ops, err := worksheet(ctx, lines)
	if err != nil {
		return puzzles.Answer{}, err
	}
	part1, err := solveWith(ctx, byRows, rows, ops)
	if err != nil {
		return puzzles.Answer{}, err
	}
	part2, err := solveWith(ctx, byColumns, rows, ops)
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: part1, Part2: part2}, nil
}
