// Package observability provides OpenTelemetry tracing and metrics for
// puzzle runs.
//
// Setup installs OTLP/HTTP trace and metric exporters when telemetry is
// enabled and leaves the global no-op providers in place otherwise, so
// callers instrument unconditionally:
//
//	shutdown, err := observability.Setup(ctx, cfg)
//	defer shutdown(context.Background())
//
//	metrics, err := observability.NewMetrics(observability.Meter(observability.InstrumentationName))
//	ctx, run := observability.StartRun(ctx, metrics, "2015/1", runID)
//	answer, err := solve(ctx)
//	run.End(ctx, err)
package observability
