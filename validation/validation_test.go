package validation

import (
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/prelude/errors"
)

func TestValidatorRequired(t *testing.T) {
	if New().Required("name", "aoc").HasErrors() {
		t.Error("expected no errors for valid input")
	}
	if !New().Required("name", "   ").HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorRange(t *testing.T) {
	tests := []struct {
		day     int
		wantErr bool
	}{
		{1, false},
		{25, false},
		{0, true},
		{26, true},
	}
	for _, tc := range tests {
		if got := New().Range("day", tc.day, 1, 25).HasErrors(); got != tc.wantErr {
			t.Errorf("Range(%d) hasErrors = %v, want %v", tc.day, got, tc.wantErr)
		}
	}
}

func TestValidatorOptionalUUID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", false},
		{"valid", uuid.NewString(), false},
		{"malformed", "not-a-uuid", true},
		{"nil uuid", uuid.Nil.String(), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := New().OptionalUUID("run_id", tc.value).HasErrors(); got != tc.wantErr {
				t.Errorf("hasErrors = %v, want %v", got, tc.wantErr)
			}
		})
	}
}

func TestValidatorOneOfAndCustom(t *testing.T) {
	v := New().
		OneOf("format", "xml", []string{"text", "json"}).
		OneOf("format", "", []string{"text"}).
		Custom(false, "input", "file does not exist")
	if len(v.Errors()) != 2 {
		t.Errorf("expected 2 errors, got %v", v.Errors())
	}
}

func TestValidatorValidate(t *testing.T) {
	if err := New().Validate(); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
	err := New().Range("year", 1999, 2015, 2025).Range("day", 30, 1, 25).Validate()
	if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT, got %v", err)
	}
	if !strings.Contains(err.Error(), "year: must be between 2015 and 2025; day: must be between 1 and 25") {
		t.Errorf("message = %q", err.Error())
	}
}

type inputConfig struct {
	Dir     string `mapstructure:"dir" validate:"required"`
	Pattern string `mapstructure:"pattern" validate:"required"`
}

type testConfig struct {
	Name  string      `mapstructure:"name" validate:"required"`
	Level string      `mapstructure:"level" validate:"oneof=debug info"`
	Input inputConfig `mapstructure:"input"`
}

func TestStructValidateValid(t *testing.T) {
	cfg := testConfig{Name: "aoc", Level: "info", Input: inputConfig{Dir: "inputs", Pattern: "x"}}
	if err := Validate(cfg); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	err := Validate(testConfig{Level: "loud", Input: inputConfig{Pattern: "x"}})
	if !errors.IsCode(err, errors.ErrCodeInvalidConfig) {
		t.Fatalf("expected INVALID_CONFIG, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"name: is required", "level: must be one of: debug info", "input.dir: is required"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
	appErr, _ := errors.AsAppError(err)
	if fields, ok := appErr.Details["fields"].([]FieldError); !ok || len(fields) != 3 {
		t.Errorf("details = %v", appErr.Details)
	}
}
