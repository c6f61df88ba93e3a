package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
)

func jsonLogger(buf *bytes.Buffer, level string) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, "aoc", buf)
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	return m
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "info").Info("solved", Fields("puzzle", "2015/1", "part", 2))
	m := decode(t, &buf)
	if m["message"] != "solved" || m["puzzle"] != "2015/1" || m["service"] != "aoc" {
		t.Errorf("unexpected entry: %v", m)
	}
	if m["part"] != float64(2) {
		t.Errorf("part = %v", m["part"])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "warn")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Error("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("error missing: %q", buf.String())
	}
}

func TestInvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "loud")
	l.Debug("hidden")
	l.Info("shown")
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("got %q", buf.String())
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger(&buf, "info").WithComponent("runner")
	if l.service != "aoc" {
		t.Errorf("service should be preserved, got %q", l.service)
	}
	l.Info("x")
	if m := decode(t, &buf); m[FieldComponent] != "runner" {
		t.Errorf("component = %v", m[FieldComponent])
	}
}

func TestWithContext_RunAndTrace(t *testing.T) {
	var buf bytes.Buffer
	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = ContextWithRunID(ctx, "run-1")

	jsonLogger(&buf, "info").WithContext(ctx).Info("x")
	m := decode(t, &buf)
	if m[FieldRunID] != "run-1" {
		t.Errorf("run_id = %v", m[FieldRunID])
	}
	if m[FieldTraceID] != traceID.String() || m[FieldSpanID] != spanID.String() {
		t.Errorf("trace fields = %v / %v", m[FieldTraceID], m[FieldSpanID])
	}
}

func TestWithContext_Empty(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "info").WithContext(context.Background()).Info("x")
	m := decode(t, &buf)
	if _, ok := m[FieldRunID]; ok {
		t.Error("unexpected run_id")
	}
	if _, ok := m[FieldTraceID]; ok {
		t.Error("unexpected trace_id")
	}
}

func TestWithFieldsAndError(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger(&buf, "info").WithFields(Fields("day", 3)).WithError(errors.New("bad")).Warn("x")
	m := decode(t, &buf)
	if m["day"] != float64(3) || m["error"] != "bad" {
		t.Errorf("unexpected entry: %v", m)
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "aoc", &buf)
	l.Info("hello", Fields("k", "v"))
	out := buf.String()
	if !strings.Contains(out, "[AOC][INF]") || !strings.Contains(out, "hello") || !strings.Contains(out, "k:v") {
		t.Errorf("console output = %q", out)
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stderr" || !cfg.Timestamp {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "debug", Format: "json", Output: "stdout"}, false},
		{"bad level", Config{Level: "loud", Format: "json", Output: "stdout"}, true},
		{"bad format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"bad output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGlobalLogger(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	var buf bytes.Buffer
	SetGlobalLogger(jsonLogger(&buf, "debug"))
	Debug("d")
	Info("i")
	Warn("w")
	Error("e")
	if n := strings.Count(buf.String(), "\n"); n != 4 {
		t.Errorf("expected 4 lines, got %d: %q", n, buf.String())
	}
}

func TestRegisterAndGet(t *testing.T) {
	var buf bytes.Buffer
	custom := jsonLogger(&buf, "info")
	Register("custom", custom)
	if Get("custom") != custom {
		t.Error("expected registered logger")
	}
	if Get("unregistered") == nil {
		t.Error("expected fallback logger")
	}
}

func TestFieldHelpers(t *testing.T) {
	f := Fields("a", 1, 2, "ignored", "odd")
	if len(f) != 1 || f["a"] != 1 {
		t.Errorf("Fields() = %v", f)
	}
	e := ErrorFields("parse", errors.New("boom"))
	if e[FieldOperation] != "parse" || e[FieldError] != "boom" {
		t.Errorf("ErrorFields() = %v", e)
	}
	d := DurationFields("solve", 1500*time.Millisecond)
	if d[FieldDuration] != int64(1500) {
		t.Errorf("DurationFields() = %v", d)
	}
}
