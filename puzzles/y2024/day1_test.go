package y2024

import (
	"context"
	"strings"
	"testing"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/puzzles"
)

func TestDay1(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  puzzles.Answer
	}{
		{"example", "3   4\n4   3\n2   5\n1   3\n3   9\n3   3\n", puzzles.Answer{Part1: 11, Part2: 31}},
		{"no trailing newline", "1 1\n2 5", puzzles.Answer{Part1: 3, Part2: 1}},
		{"empty", "", puzzles.Answer{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Day1(context.Background(), strings.NewReader(tc.input))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDay1Malformed(t *testing.T) {
	for _, input := range []string{"1 2 3\n", "1\n", "a b\n"} {
		_, err := Day1(context.Background(), strings.NewReader(input))
		if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
			t.Errorf("input %q: expected INVALID_INPUT, got %v", input, err)
		}
	}
}
