package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/kbukum/prelude/config"
	"github.com/kbukum/prelude/errors"
	"github.com/kbukum/prelude/logger"
	"github.com/kbukum/prelude/observability"
	"github.com/kbukum/prelude/puzzles"
	"github.com/kbukum/prelude/puzzles/y2015"
	"github.com/kbukum/prelude/puzzles/y2024"
	"github.com/kbukum/prelude/puzzles/y2025"
	"github.com/kbukum/prelude/validation"
	"github.com/kbukum/prelude/version"
)

const serviceName = "aoc"

// stdinArg selects standard input as the puzzle input.
const stdinArg = "-"

type runner struct {
	cfg      config.RunnerConfig
	registry *puzzles.Registry
	metrics  *observability.Metrics
	log      *logger.Logger
	stdin    io.Reader
	out      io.Writer
	shutdown func(context.Context) error
}

func defaultRegistry() *puzzles.Registry {
	r := puzzles.NewRegistry()
	y2015.Register(r)
	y2024.Register(r)
	y2025.Register(r)
	return r
}

func loadConfig(path string) (config.RunnerConfig, error) {
	var cfg config.RunnerConfig
	var opts []config.LoaderOption
	if path != "" {
		opts = append(opts, config.WithConfigFile(path))
	}
	if err := config.LoadConfig(serviceName, &cfg, opts...); err != nil {
		return cfg, err
	}
	cfg.ApplyDefaults()
	if cfg.Version == "" {
		cfg.Version = version.Get().Short()
	}
	return cfg, cfg.Validate()
}

// newRunner sets up logging and telemetry for cfg.
func newRunner(ctx context.Context, cfg config.RunnerConfig, stdin io.Reader, out io.Writer) (*runner, error) {
	logger.Init(cfg.Logging, cfg.Name)
	logger.RegisterDefaults("runner")

	shutdown, err := observability.Setup(ctx, observability.Config{
		Enabled:        cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: cfg.Version,
		Environment:    cfg.Environment,
		Endpoint:       cfg.Telemetry.Endpoint,
		Insecure:       cfg.Telemetry.Insecure,
		SampleRate:     cfg.Telemetry.SampleRate,
	})
	if err != nil {
		return nil, err
	}
	r := &runner{
		cfg:      cfg,
		registry: defaultRegistry(),
		log:      logger.Get("runner"),
		stdin:    stdin,
		out:      out,
		shutdown: shutdown,
	}
	if cfg.Telemetry.Enabled {
		if r.metrics, err = observability.NewMetrics(observability.Meter(observability.InstrumentationName)); err != nil {
			_ = shutdown(ctx)
			return nil, err
		}
	}
	return r, nil
}

// newRunID returns runID when set, or a fresh UUID.
func newRunID(runID string) (string, error) {
	if err := validation.New().OptionalUUID("run-id", runID).Validate(); err != nil {
		return "", err
	}
	if runID == "" {
		return uuid.NewString(), nil
	}
	return runID, nil
}

// open resolves the input of a puzzle: standard input for "-", the named
// file, or the configured input path when arg is empty.
func (r *runner) open(ctx context.Context, id puzzles.ID, arg string) (io.ReadCloser, string, error) {
	_, span := observability.StartSpan(ctx, observability.SpanInputOpen)
	defer span.End()

	if arg == stdinArg {
		span.SetAttributes(attribute.String(observability.AttrInput, "stdin"))
		return io.NopCloser(r.stdin), "stdin", nil
	}
	path := arg
	if path == "" {
		path = r.cfg.Input.InputPath(id.Year, id.Day)
	}
	span.SetAttributes(attribute.String(observability.AttrInput, path))

	f, err := os.Open(path)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		if os.IsNotExist(err) {
			return nil, path, errors.NotFound("input", path).WithCause(err)
		}
		return nil, path, errors.ReadFailed(err)
	}
	return f, path, nil
}

// solve runs one puzzle and prints its answer.
func (r *runner) solve(ctx context.Context, id puzzles.ID, arg, runID string) error {
	p, err := r.registry.Lookup(id)
	if err != nil {
		return err
	}

	ctx = logger.ContextWithRunID(ctx, runID)
	ctx, run := observability.StartRun(ctx, r.metrics, id.String(), runID)
	log := r.log.WithContext(ctx).WithFields(logger.Fields(logger.FieldPuzzle, id.String()))

	in, name, err := r.open(ctx, id, arg)
	if err != nil {
		run.End(ctx, err)
		return err
	}
	defer in.Close()

	log.Debug("solving", logger.Fields(logger.FieldInput, name))
	answer, err := p.Solve(ctx, run.CountingReader(ctx, in))
	run.End(ctx, err)
	if err != nil {
		log.WithError(err).Error("puzzle failed", logger.Fields(
			logger.FieldInput, name,
			logger.FieldCode, string(errors.Wrap(err).Code),
		))
		return err
	}
	log.Info("puzzle solved", logger.DurationFields("solve", run.Duration()))

	_, err = fmt.Fprintf(r.out, "%s %s\n%s\n", id, p.Title, answer)
	return err
}

// list prints every registered puzzle.
func (r *runner) list() error {
	for _, p := range r.registry.List() {
		if _, err := fmt.Fprintf(r.out, "%-8s %s\n", p.ID, p.Title); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) close(ctx context.Context) {
	if err := r.shutdown(ctx); err != nil {
		r.log.Warn("telemetry shutdown failed", logger.ErrorFields("shutdown", err))
	}
}
