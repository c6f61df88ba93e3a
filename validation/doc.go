// Package validation checks configuration structs and command arguments.
//
// Struct tag validation (go-playground/validator) is used for loaded
// configuration; failures become INVALID_CONFIG errors. Programmatic
// validation collects field errors for command-line arguments and reports
// them as a single INVALID_INPUT error.
//
// # Struct Tag Validation
//
//	type InputConfig struct {
//	    Dir string `validate:"required"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    Range("day", day, 1, 25).
//	    OptionalUUID("run_id", runID).
//	    Validate()
package validation
