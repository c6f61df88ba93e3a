package observability

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/kbukum/prelude/errors"
)

// recordingTracer installs an SDK tracer provider whose ended spans are kept
// in memory, restoring the previous provider when the test ends.
func recordingTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() {
		otel.SetTracerProvider(prev)
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func manualMetrics(t *testing.T) (*Metrics, *sdkmetric.ManualReader) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })
	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	return m, reader
}

func collectSums(t *testing.T, reader *sdkmetric.ManualReader) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatal(err)
	}
	sums := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if s, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range s.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	return sums
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, kv := range attrs {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestSetupDisabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), Config{})
	if err != nil {
		t.Fatal(err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("no-op shutdown failed: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	prevTP, prevMP := otel.GetTracerProvider(), otel.GetMeterProvider()
	defer func() {
		otel.SetTracerProvider(prevTP)
		otel.SetMeterProvider(prevMP)
	}()

	shutdown, err := Setup(context.Background(), Config{
		Enabled:     true,
		ServiceName: "aoc",
		Endpoint:    "localhost:4318",
		Insecure:    true,
		SampleRate:  1,
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	if _, ok := otel.GetTracerProvider().(*sdktrace.TracerProvider); !ok {
		t.Error("expected an SDK tracer provider to be installed")
	}
	// Nothing listens on the endpoint; only check that shutdown returns.
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_ = shutdown(ctx)
}

func TestSampler(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.5, "TraceIDRatioBased{0.5}"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc.rate), func(t *testing.T) {
			if got := sampler(tc.rate).Description(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNewResource(t *testing.T) {
	res, err := newResource(Config{ServiceName: "aoc", ServiceVersion: "1.2.3", Environment: "test"})
	if err != nil {
		t.Fatalf("newResource failed: %v", err)
	}
	v, ok := attrValue(res.Attributes(), "service.name")
	if !ok || v.AsString() != "aoc" {
		t.Errorf("service.name = %v", v.AsString())
	}
}

func TestStartRun_Success(t *testing.T) {
	sr := recordingTracer(t)
	metrics, reader := manualMetrics(t)

	ctx, run := StartRun(context.Background(), metrics, "2015/1", "run-1")
	if !run.Span().IsRecording() {
		t.Fatal("expected a recording span")
	}
	in := run.CountingReader(ctx, strings.NewReader("(()))"))
	if _, err := io.ReadAll(in); err != nil {
		t.Fatal(err)
	}
	run.End(ctx, nil)

	spans := sr.Ended()
	if len(spans) != 1 || spans[0].Name() != SpanPuzzleRun {
		t.Fatalf("spans = %v", spans)
	}
	if v, _ := attrValue(spans[0].Attributes(), AttrStatus); v.AsString() != "ok" {
		t.Errorf("status = %q", v.AsString())
	}
	if v, _ := attrValue(spans[0].Attributes(), AttrRunID); v.AsString() != "run-1" {
		t.Errorf("run id = %q", v.AsString())
	}

	sums := collectSums(t, reader)
	if sums["puzzle.run.total"] != 1 || sums["puzzle.input.bytes"] != 5 {
		t.Errorf("sums = %v", sums)
	}
	if _, ok := sums["puzzle.error.total"]; ok {
		t.Error("no error should be recorded")
	}
}

func TestStartRun_Failure(t *testing.T) {
	sr := recordingTracer(t)
	metrics, reader := manualMetrics(t)

	ctx, run := StartRun(context.Background(), metrics, "2015/2", "run-2")
	run.End(ctx, errors.InvalidInput("1x2", "expected LxWxH"))

	span := sr.Ended()[0]
	if span.Status().Code != codes.Error {
		t.Errorf("span status = %v", span.Status())
	}
	if v, _ := attrValue(span.Attributes(), AttrErrorCode); v.AsString() != "INVALID_INPUT" {
		t.Errorf("error code = %q", v.AsString())
	}
	if len(span.Events()) == 0 {
		t.Error("expected the error to be recorded as an event")
	}
	if sums := collectSums(t, reader); sums["puzzle.error.total"] != 1 {
		t.Errorf("sums = %v", sums)
	}
}

func TestStartRun_NilMetrics(t *testing.T) {
	ctx, run := StartRun(context.Background(), nil, "2024/1", "run-3")
	r := strings.NewReader("x")
	if run.CountingReader(ctx, r) != io.Reader(r) {
		t.Error("reader should be returned unwrapped without metrics")
	}
	run.End(ctx, fmt.Errorf("plain"))
	if run.Duration() < 0 {
		t.Error("negative duration")
	}
}

func TestNewMetricsNoop(t *testing.T) {
	metrics, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatal(err)
	}
	metrics.RecordRun(context.Background(), "2015/1", "ok", time.Second)
	metrics.RecordInputBytes(context.Background(), "2015/1", 10)
	metrics.RecordError(context.Background(), "2015/1", "INVALID_INPUT")
}
