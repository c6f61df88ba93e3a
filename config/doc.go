// Package config loads the runner configuration.
//
// LoadConfig reads config.yml (searched under cmd/<name>/, config/ and the
// working directory, or given explicitly), then .env files via godotenv,
// then AOC_-prefixed environment variables, and unmarshals the result with
// Viper. Environment variables use underscore-separated paths, e.g.
// AOC_INPUT_DIR overrides input.dir and AOC_LOGGING_LEVEL overrides
// logging.level.
//
// # Usage
//
//	var cfg config.RunnerConfig
//	if err := config.LoadConfig("aoc", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
package config
