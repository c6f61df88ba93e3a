// Package logger provides structured logging for the puzzle runner using
// zerolog.
//
// Loggers are tagged with a service and, optionally, a component. A logger
// derived with WithContext also carries the run id and, when a span is
// active, the OpenTelemetry trace and span ids.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "console"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("runner").WithContext(ctx)
//	log.Info("puzzle solved", logger.DurationFields("solve", elapsed))
package logger
