package util

import (
	"strconv"
	"strings"

	"github.com/kbukum/prelude/errors"
)

// Atoi parses a base-10 integer, ignoring surrounding whitespace. Failures
// are reported as INVALID_INPUT naming the offending text.
func Atoi(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.InvalidInput(s, "not an integer").WithCause(err)
	}
	return n, nil
}

// ParseInts parses every field of s separated by sep. An empty sep splits
// around whitespace.
func ParseInts(s, sep string) ([]int, error) {
	var fields []string
	if sep == "" {
		fields = SplitFields(s)
	} else {
		fields = strings.Split(s, sep)
	}
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := Atoi(f)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// ParseRange parses "lo-hi" into its two bounds.
func ParseRange(s string) (lo, hi int, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return 0, 0, errors.InvalidInput(s, "expected lo-hi")
	}
	if lo, err = Atoi(a); err != nil {
		return 0, 0, err
	}
	if hi, err = Atoi(b); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}
