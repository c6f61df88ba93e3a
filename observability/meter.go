package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/prelude/logger"
)

// InitMeter installs a global meter provider exporting over OTLP/HTTP. A
// one-shot CLI run exits long before a periodic export would fire, so the
// data is flushed by shutting the provider down.
func InitMeter(ctx context.Context, cfg Config) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Debug("meter initialized", logger.Fields("endpoint", cfg.Endpoint))
	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Metrics holds the instruments recorded for puzzle runs.
type Metrics struct {
	runTotal    metric.Int64Counter
	runDuration metric.Float64Histogram
	inputBytes  metric.Int64Counter
	errorTotal  metric.Int64Counter
}

// NewMetrics creates the run instruments on meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	runTotal, err := meter.Int64Counter("puzzle.run.total",
		metric.WithDescription("Puzzle runs by puzzle and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating puzzle.run.total counter: %w", err)
	}

	runDuration, err := meter.Float64Histogram("puzzle.run.duration",
		metric.WithDescription("Time to solve both parts of a puzzle"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating puzzle.run.duration histogram: %w", err)
	}

	inputBytes, err := meter.Int64Counter("puzzle.input.bytes",
		metric.WithDescription("Bytes of puzzle input consumed"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating puzzle.input.bytes counter: %w", err)
	}

	errorTotal, err := meter.Int64Counter("puzzle.error.total",
		metric.WithDescription("Failed runs by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating puzzle.error.total counter: %w", err)
	}

	return &Metrics{
		runTotal:    runTotal,
		runDuration: runDuration,
		inputBytes:  inputBytes,
		errorTotal:  errorTotal,
	}, nil
}

// RecordRun records one finished run.
func (m *Metrics) RecordRun(ctx context.Context, puzzle, status string, duration time.Duration) {
	m.runTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrPuzzle, puzzle),
		attribute.String(AttrStatus, status),
	))
	m.runDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String(AttrPuzzle, puzzle),
	))
}

// RecordInputBytes adds n to the bytes read for puzzle.
func (m *Metrics) RecordInputBytes(ctx context.Context, puzzle string, n int64) {
	m.inputBytes.Add(ctx, n, metric.WithAttributes(attribute.String(AttrPuzzle, puzzle)))
}

// RecordError records a failed run by error code.
func (m *Metrics) RecordError(ctx context.Context, puzzle, code string) {
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrPuzzle, puzzle),
		attribute.String(AttrErrorCode, code),
	))
}
