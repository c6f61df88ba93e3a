package puzzles

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"sync"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/validation"
)

// Answer holds the results of both parts of a puzzle.
type Answer struct {
	Part1 int
	Part2 int
}

func (a Answer) String() string {
	return fmt.Sprintf("part 1: %d\npart 2: %d", a.Part1, a.Part2)
}

// Solver reads a puzzle input and solves both parts. Malformed input is
// reported as INVALID_INPUT.
type Solver func(ctx context.Context, in io.Reader) (Answer, error)

// ID identifies a puzzle by event year and day.
type ID struct {
	Year int
	Day  int
}

func (id ID) String() string {
	return fmt.Sprintf("%d/%d", id.Year, id.Day)
}

// ParseID parses a year and a day given as text. Every problem is reported
// in one INVALID_INPUT error.
func ParseID(year, day string) (ID, error) {
	y, yerr := strconv.Atoi(year)
	d, derr := strconv.Atoi(day)
	v := validation.New().
		Required("year", year).
		Required("day", day).
		Custom(yerr == nil, "year", "must be a number").
		Custom(derr == nil, "day", "must be a number")
	if yerr == nil {
		v.Range("year", y, firstEvent, 9999)
	}
	if derr == nil {
		v.Range("day", d, 1, 25)
	}
	if err := v.Validate(); err != nil {
		return ID{}, err
	}
	return ID{Year: y, Day: d}, nil
}

const firstEvent = 2015

func compareIDs(a, b ID) int {
	if c := cmp.Compare(a.Year, b.Year); c != 0 {
		return c
	}
	return cmp.Compare(a.Day, b.Day)
}

// Puzzle is a registered solver.
type Puzzle struct {
	ID    ID
	Title string
	Solve Solver
}

// Registry maps puzzle ids to solvers.
type Registry struct {
	mu      sync.RWMutex
	puzzles map[ID]Puzzle
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{puzzles: make(map[ID]Puzzle)}
}

// Register adds a solver. Registering the same id twice replaces the earlier
// solver.
func (r *Registry) Register(year, day int, title string, solve Solver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := ID{Year: year, Day: day}
	r.puzzles[id] = Puzzle{ID: id, Title: title, Solve: solve}
}

// Lookup returns the puzzle registered under id.
func (r *Registry) Lookup(id ID) (Puzzle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.puzzles[id]
	if !ok {
		return Puzzle{}, errors.NotFound("puzzle", id.String())
	}
	return p, nil
}

// List returns all puzzles ordered by year and day.
func (r *Registry) List() []Puzzle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Puzzle, 0, len(r.puzzles))
	for _, p := range r.puzzles {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b Puzzle) int { return compareIDs(a.ID, b.ID) })
	return out
}
