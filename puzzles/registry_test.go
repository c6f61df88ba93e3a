package puzzles

import (
	"context"
	"io"
	"testing"

	"github.com/kbukum/prelude/errors"
)

func constant(a Answer) Solver {
	return func(context.Context, io.Reader) (Answer, error) { return a, nil }
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(2015, 1, "Not Quite Lisp", constant(Answer{Part1: 1, Part2: 2}))

	p, err := r.Lookup(ID{Year: 2015, Day: 1})
	if err != nil {
		t.Fatal(err)
	}
	got, _ := p.Solve(context.Background(), nil)
	if got != (Answer{Part1: 1, Part2: 2}) {
		t.Errorf("answer = %+v", got)
	}

	_, err = r.Lookup(ID{Year: 2015, Day: 2})
	if !errors.IsCode(err, errors.ErrCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
}

func TestRegistryListOrdered(t *testing.T) {
	r := NewRegistry()
	r.Register(2025, 1, "", constant(Answer{}))
	r.Register(2015, 6, "", constant(Answer{}))
	r.Register(2015, 2, "", constant(Answer{}))
	r.Register(2024, 1, "", constant(Answer{}))

	want := []string{"2015/2", "2015/6", "2024/1", "2025/1"}
	got := r.List()
	if len(got) != len(want) {
		t.Fatalf("got %d puzzles", len(got))
	}
	for i, p := range got {
		if p.ID.String() != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, p.ID, want[i])
		}
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		year, day string
		want      ID
		wantErr   bool
	}{
		{"2015", "1", ID{2015, 1}, false},
		{"2025", "12", ID{2025, 12}, false},
		{"15", "1", ID{}, true},
		{"2015", "0", ID{}, true},
		{"2015", "26", ID{}, true},
		{"year", "1", ID{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.year+"/"+tc.day, func(t *testing.T) {
			got, err := ParseID(tc.year, tc.day)
			if tc.wantErr {
				if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
					t.Errorf("expected INVALID_INPUT, got %v", err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Errorf("ParseID = %v, %v", got, err)
			}
		})
	}
}

func TestAnswerString(t *testing.T) {
	if got := (Answer{Part1: 3, Part2: 6}).String(); got != "part 1: 3\npart 2: 6" {
		t.Errorf("String() = %q", got)
	}
}
