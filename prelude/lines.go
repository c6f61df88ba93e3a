package prelude

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/kbukum/prelude/errors"
)

// Lines creates a single-pass view over the lines of r, with the trailing
// "\n" (and a "\r" before it) removed. A last line without a terminator is
// still produced. Lines are not length-limited and their content is passed
// through unchanged.
//
// Each cursor buffers the line it is positioned on, reading the first line
// as soon as it is created and every later line when the caller asks for it.
// Pass a *bufio.Reader to share one stream between several views; each then
// sees a disjoint, order-dependent subset of the lines.
func Lines(r io.Reader) *View[string] {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &View[string]{
		create: func(_ context.Context) Cursor[string] {
			c := &lineCursor{reader: br}
			c.advance()
			return c
		},
		size: unknownSize,
	}
}

type lineCursor struct {
	reader  *bufio.Reader
	line    string
	pending bool
	stale   bool
	done    bool
	err     error
}

// advance reads the next line into the buffer, or latches completion.
func (c *lineCursor) advance() {
	c.stale = false
	if c.done {
		return
	}
	s, err := c.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		c.pending = false
		c.done = true
		c.err = errors.ReadFailed(err)
		return
	}
	if err == io.EOF && s == "" {
		c.pending = false
		c.done = true
		return
	}
	c.line = trimEOL(s)
	c.pending = true
}

// HasNext reports whether another line is available, reading it if needed.
func (c *lineCursor) HasNext() bool {
	if c.stale {
		c.advance()
	}
	return c.pending
}

func (c *lineCursor) Next(_ context.Context) (string, bool, error) {
	if !c.HasNext() {
		err := c.err
		c.err = nil
		return "", false, err
	}
	c.stale = true
	return c.line, true, nil
}

func (c *lineCursor) Close() error { return nil }

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
