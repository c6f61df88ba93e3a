package puzzles

import (
	"context"
	"strings"
	"testing"

	"github.com/kbukum/prelude/errors"
)

func TestFirstLine(t *testing.T) {
	got, err := FirstLine(context.Background(), strings.NewReader("abc\r\ndef\n"))
	if err != nil || got != "abc" {
		t.Errorf("FirstLine = %q, %v", got, err)
	}

	_, err = FirstLine(context.Background(), strings.NewReader(""))
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestIsBlank(t *testing.T) {
	for in, want := range map[string]bool{"": true, " \t": true, "1-2": false} {
		if IsBlank(in) != want {
			t.Errorf("IsBlank(%q) = %v", in, !want)
		}
	}
}
