package y2025

import (
	"context"
	"strings"
	"testing"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/puzzles"
)

func solve(t *testing.T, s puzzles.Solver, input string) puzzles.Answer {
	t.Helper()
	got, err := s(context.Background(), strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return got
}

func TestSolvers(t *testing.T) {
	tests := []struct {
		name   string
		solver puzzles.Solver
		input  string
		want   puzzles.Answer
	}{
		{
			name:   "day1",
			solver: Day1,
			input:  "L68\nL30\nR48\nL5\nR60\nL55\nL1\nL99\nR14\nL82\n",
			want:   puzzles.Answer{Part1: 3, Part2: 6},
		},
		{
			name:   "day1 full turns",
			solver: Day1,
			input:  "R1000\n",
			want:   puzzles.Answer{Part1: 0, Part2: 10},
		},
		{
			name:   "day2",
			solver: Day2,
			input: "11-22,95-115,998-1012,1188511880-1188511890,222220-222224," +
				"1698522-1698528,446443-446449,38593856-38593862,565653-565659," +
				"824824821-824824827,2121212118-2121212124\n",
			want: puzzles.Answer{Part1: 1227775554, Part2: 4174379265},
		},
		{
			name:   "day3",
			solver: Day3,
			input:  "987654321111111\n811111111111119\n234234234234278\n818181911112111\n",
			want:   puzzles.Answer{Part1: 357, Part2: 3121910778619},
		},
		{
			name:   "day5",
			solver: Day5,
			input:  "3-5\n10-14\n16-20\n12-18\n\n1\n5\n8\n11\n17\n32\n",
			want:   puzzles.Answer{Part1: 3, Part2: 14},
		},
		{
			name:   "day6",
			solver: Day6,
			input: "123 328  51 64 \n" +
				" 45 64  387 23 \n" +
				"  6 98  215 314\n" +
				"*   +   *   +  \n",
			want: puzzles.Answer{Part1: 4277556, Part2: 3263827},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := solve(t, tc.solver, tc.input); got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestMalformedInput(t *testing.T) {
	tests := []struct {
		name   string
		solver puzzles.Solver
		input  string
	}{
		{"day1 direction", Day1, "X10\n"},
		{"day1 distance", Day1, "R1x\n"},
		{"day2 range", Day2, "11-22,95\n"},
		{"day2 reversed", Day2, "22-11\n"},
		{"day2 empty", Day2, ""},
		{"day3 digit", Day3, "12a4\n"},
		{"day5 range", Day5, "3-\n\n4\n"},
		{"day5 id", Day5, "3-5\n\nfour\n"},
		{"day6 operator", Day6, "1 2\n3 4\n- +\n"},
		{"day6 too short", Day6, "1 2\n"},
		{"day6 operator count", Day6, "1 2\n3 4\n+\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.solver(context.Background(), strings.NewReader(tc.input))
			if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
				t.Errorf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestJoltage(t *testing.T) {
	tests := []struct {
		bank string
		k    int
		want int
	}{
		{"987654321111111", 2, 98},
		{"811111111111119", 2, 89},
		{"818181911112111", 12, 888911112111},
		{"12", 3, 12},
	}
	for _, tc := range tests {
		t.Run(tc.bank, func(t *testing.T) {
			bank, err := parseBank(context.Background(), tc.bank)
			if err != nil {
				t.Fatal(err)
			}
			if got := joltage(bank, tc.k); got != tc.want {
				t.Errorf("joltage(%s, %d) = %d, want %d", tc.bank, tc.k, got, tc.want)
			}
		})
	}
}

func TestRepeatedIDs(t *testing.T) {
	for n, want := range map[int][2]bool{
		11:         {true, true},
		1010:       {true, true},
		111:        {false, true},
		123123123:  {false, true},
		1188511885: {true, true},
		12:         {false, false},
		1001:       {false, false},
	} {
		if doubled(n) != want[0] || repeated(n) != want[1] {
			t.Errorf("%d: doubled=%v repeated=%v, want %v", n, doubled(n), repeated(n), want)
		}
	}
}

func TestMerge(t *testing.T) {
	got := merge([]freshRange{{16, 20}, {3, 5}, {12, 18}, {10, 14}, {21, 21}})
	want := []freshRange{{3, 5}, {10, 20}, {21, 21}}
	if len(got) != len(want) {
		t.Fatalf("merge = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("merge[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
