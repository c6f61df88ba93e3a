package puzzles

import (
	"context"
	"io"
	"strings"

	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/prelude"
)

// FirstLine returns the first line of in. An empty input is INVALID_INPUT.
func FirstLine(ctx context.Context, in io.Reader) (string, error) {
	line, err := prelude.Front(ctx, prelude.Lines(in))
	if errors.IsCode(err, errors.ErrCodeEmptySequence) {
		return "", errors.InvalidInput("", "empty input").WithCause(err)
	}
	return line, err
}

// IsBlank reports whether line holds only whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
