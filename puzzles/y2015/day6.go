package y2015

import (
	"context"
	"io"
	"regexp"
	"strconv"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
)

const gridSize = 1000

type action int

const (
	turnOn action = iota
	turnOff
	toggle
)

type instruction struct {
	action action
	x0, y0 int
	x1, y1 int
}

var instructionRe = regexp.MustCompile(`^(turn on|turn off|toggle) (\d+),(\d+) through (\d+),(\d+)$`)

func parseInstruction(_ context.Context, line string) (instruction, error) {
	m := instructionRe.FindStringSubmatch(line)
	if m == nil {
		return instruction{}, errors.InvalidInput(line, "malformed instruction")
	}
	var n [4]int
	for i := range n {
		n[i], _ = strconv.Atoi(m[i+2])
		if n[i] >= gridSize {
			return instruction{}, errors.InvalidInput(line, "coordinate outside the grid")
		}
	}
	inst := instruction{
		x0: min(n[0], n[2]), y0: min(n[1], n[3]),
		x1: max(n[0], n[2]), y1: max(n[1], n[3]),
	}
	switch m[1] {
	case "turn on":
		inst.action = turnOn
	case "turn off":
		inst.action = turnOff
	default:
		inst.action = toggle
	}
	return inst, nil
}

// lights holds both readings of the grid: on/off and brightness.
type lights struct {
	on         []bool
	brightness []int
}

func (l *lights) apply(inst instruction) {
	for y := inst.y0; y <= inst.y1; y++ {
		for x := inst.x0; x <= inst.x1; x++ {
			i := y*gridSize + x
			switch inst.action {
			case turnOn:
				l.on[i] = true
				l.brightness[i]++
			case turnOff:
				l.on[i] = false
				l.brightness[i] = max(l.brightness[i]-1, 0)
			case toggle:
				l.on[i] = !l.on[i]
				l.brightness[i] += 2
			}
		}
	}
}

// Day6 runs the light instructions and reports the lights left on and their
// total brightness.
func Day6(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	l := &lights{
		on:         make([]bool, gridSize*gridSize),
		brightness: make([]int, gridSize*gridSize),
	}
	err := prelude.ForEach(ctx, prelude.Map(prelude.Lines(in), parseInstruction), func(_ context.Context, inst instruction) error {
		l.apply(inst)
		return nil
	})
	if err != nil {
		return puzzles.Answer{}, err
	}

	lit, err := prelude.Count(ctx, prelude.Filter(prelude.FromSlice(l.on), func(b bool) bool { return b }))
	if err != nil {
		return puzzles.Answer{}, err
	}
	total, err := prelude.Sum(ctx, prelude.FromSlice(l.brightness))
	if err != nil {
		return puzzles.Answer{}, err
	}
	return puzzles.Answer{Part1: lit, Part2: total}, nil
}
