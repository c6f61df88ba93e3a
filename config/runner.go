package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kbukum/prelude/validation"
)

// RunnerConfig is the configuration of the puzzle runner.
type RunnerConfig struct {
	ServiceConfig `yaml:",inline" mapstructure:",squash"`
	Input         InputConfig     `yaml:"input" mapstructure:"input"`
	Telemetry     TelemetryConfig `yaml:"telemetry" mapstructure:"telemetry"`
}

// InputConfig locates puzzle input files.
type InputConfig struct {
	// Dir is the directory input paths are resolved against.
	Dir string `yaml:"dir" mapstructure:"dir" validate:"required"`
	// Pattern names the input of one puzzle; {year} and {day} are replaced,
	// and {day} accepts a zero-padded form as {day:02}.
	Pattern string `yaml:"pattern" mapstructure:"pattern" validate:"required"`
}

// TelemetryConfig enables exporting traces and metrics over OTLP/HTTP.
type TelemetryConfig struct {
	Enabled     bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint    string  `yaml:"endpoint" mapstructure:"endpoint" validate:"required_if=Enabled true,omitempty,hostname_port"`
	Insecure    bool    `yaml:"insecure" mapstructure:"insecure"`
	SampleRate  float64 `yaml:"sample_rate" mapstructure:"sample_rate" validate:"gte=0,lte=1"`
	ServiceName string  `yaml:"service_name" mapstructure:"service_name"`
}

// ApplyDefaults applies default values to every section.
func (c *RunnerConfig) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "aoc"
	}
	c.ServiceConfig.ApplyDefaults()
	if c.Input.Dir == "" {
		c.Input.Dir = "inputs"
	}
	if c.Input.Pattern == "" {
		c.Input.Pattern = "{year}/day{day:02}.txt"
	}
	if c.Telemetry.ServiceName == "" {
		c.Telemetry.ServiceName = c.Name
	}
	if c.Telemetry.Enabled && c.Telemetry.SampleRate == 0 {
		c.Telemetry.SampleRate = 1
	}
}

// Validate validates the whole configuration.
func (c *RunnerConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

// InputPath returns the configured input file of a puzzle.
func (c *InputConfig) InputPath(year, day int) string {
	name := strings.NewReplacer(
		"{year}", strconv.Itoa(year),
		"{day:02}", fmt.Sprintf("%02d", day),
		"{day}", strconv.Itoa(day),
	).Replace(c.Pattern)
	return filepath.Join(c.Dir, filepath.FromSlash(name))
}
