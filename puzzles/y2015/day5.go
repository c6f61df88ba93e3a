package y2015

import (
	"context"
	"io"
	"strings"

	"github.com/samber/lo"

	"github.com/kbukum/prelude/prelude"
	"github.com/kbukum/prelude/puzzles"
)

var disallowed = []string{"ab", "cd", "pq", "xy"}

func isVowel(r rune) bool { return strings.ContainsRune("aeiou", r) }

func countOf[T any](ctx context.Context, v *prelude.View[T], keep func(T) bool) int {
	n, _ := prelude.Count(ctx, prelude.Filter(v, keep))
	return n
}

// nice applies the first set of rules: no disallowed pair, at least three
// vowels and at least one letter appearing twice in a row.
func nice(ctx context.Context, s string) bool {
	if lo.SomeBy(disallowed, func(d string) bool { return strings.Contains(s, d) }) {
		return false
	}
	if countOf(ctx, prelude.Runes(s), isVowel) < 3 {
		return false
	}
	return countOf(ctx, prelude.Pairwise(prelude.Runes(s)), func(p prelude.Pair[rune, rune]) bool {
		return p.First == p.Second
	}) > 0
}

// repeatSpaced reports a letter that repeats with exactly one letter between.
func repeatSpaced(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == s[i+2] {
			return true
		}
	}
	return false
}

// doublePair reports a pair of letters appearing twice without overlapping.
func doublePair(s string) bool {
	for i := 0; i+3 < len(s); i++ {
		if strings.Contains(s[i+2:], s[i:i+2]) {
			return true
		}
	}
	return false
}

func nicer(s string) bool { return repeatSpaced(s) && doublePair(s) }

// Day5 counts the nice strings under the old and the new rules.
func Day5(ctx context.Context, in io.Reader) (puzzles.Answer, error) {
	var ans puzzles.Answer
	err := prelude.ForEach(ctx, prelude.Lines(in), func(ctx context.Context, s string) error {
		if nice(ctx, s) {
			ans.Part1++
		}
		if nicer(s) {
			ans.Part2++
		}
		return nil
	})
	return ans, err
}
