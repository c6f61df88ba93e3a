package util

import (
	"strings"
)

// Chomp removes leading and trailing whitespace. A string that is all
// whitespace becomes empty.
func Chomp(s string) string {
	return strings.TrimSpace(s)
}

// SplitFields splits s around runs of whitespace, dropping empty fields.
func SplitFields(s string) []string {
	return strings.Fields(s)
}

// Transpose turns the columns of a text grid into rows. Row i of the result
// holds byte i of every input row, top to bottom, chomped. The width is that
// of the first row; shorter rows contribute a space for missing columns.
func Transpose(rows []string) []string {
	if len(rows) == 0 {
		return nil
	}
	width := len(rows[0])
	out := make([]string, 0, width)
	var b strings.Builder
	for col := range width {
		b.Reset()
		for _, row := range rows {
			if col < len(row) {
				b.WriteByte(row[col])
			} else {
				b.WriteByte(' ')
			}
		}
		out = append(out, Chomp(b.String()))
	}
	return out
}
