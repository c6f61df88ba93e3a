package observability

import (
	"context"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/prelude/errors"
)

// Run tracks one puzzle execution: its span, timing and metrics.
type Run struct {
	Puzzle    string
	RunID     string
	StartTime time.Time
	Metrics   *Metrics
	span      trace.Span
}

// StartRun starts the span of a puzzle run. A nil metrics skips metric
// recording.
func StartRun(ctx context.Context, metrics *Metrics, puzzle, runID string) (context.Context, *Run) {
	ctx, span := StartSpan(ctx, SpanPuzzleRun, trace.WithAttributes(
		attribute.String(AttrPuzzle, puzzle),
		attribute.String(AttrRunID, runID),
	))
	return ctx, &Run{
		Puzzle:    puzzle,
		RunID:     runID,
		StartTime: time.Now(),
		Metrics:   metrics,
		span:      span,
	}
}

// Span returns the span of the run.
func (r *Run) Span() trace.Span { return r.span }

// Duration returns the elapsed time since the run started.
func (r *Run) Duration() time.Duration {
	return time.Since(r.StartTime)
}

// CountingReader wraps input so the bytes read are recorded for the run.
func (r *Run) CountingReader(ctx context.Context, in io.Reader) io.Reader {
	if r.Metrics == nil {
		return in
	}
	return &countingReader{ctx: ctx, r: in, run: r}
}

// End ends the span and records the outcome. err may be nil.
func (r *Run) End(ctx context.Context, err error) {
	duration := r.Duration()
	status := "ok"
	if err != nil {
		status = "error"
		code := string(errors.Wrap(err).Code)
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
		r.span.SetAttributes(attribute.String(AttrErrorCode, code))
		if r.Metrics != nil {
			r.Metrics.RecordError(ctx, r.Puzzle, code)
		}
	}
	r.span.SetAttributes(
		attribute.String(AttrStatus, status),
		attribute.Int64(AttrDurationMs, duration.Milliseconds()),
	)
	r.span.End()

	if r.Metrics != nil {
		r.Metrics.RecordRun(ctx, r.Puzzle, status, duration)
	}
}

type countingReader struct {
	ctx context.Context
	r   io.Reader
	run *Run
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.run.Metrics.RecordInputBytes(c.ctx, c.run.Puzzle, int64(n))
	}
	return n, err
}
