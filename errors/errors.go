package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err, or any error it wraps, is an AppError with code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// --- Common Error Constructors ---

// EmptySequence creates a new AppError for reading the front of an empty sequence.
func EmptySequence() *AppError {
	return &AppError{
		Code:    ErrCodeEmptySequence,
		Message: "the sequence has no elements",
	}
}

// NotReplayable creates a new AppError for an operation that needs to iterate
// a single-pass view more than once.
func NotReplayable(operation string) *AppError {
	return &AppError{
		Code:    ErrCodeNotReplayable,
		Message: fmt.Sprintf("%s requires a replayable view; collect the input first", operation),
		Details: map[string]any{"operation": operation},
	}
}

// UnsupportedShape creates a new AppError for a container type that cannot be
// constructed, assigned, or appended to.
func UnsupportedShape(shape string) *AppError {
	return &AppError{
		Code:    ErrCodeUnsupportedShape,
		Message: fmt.Sprintf("cannot collect into %s", shape),
		Details: map[string]any{"shape": shape},
	}
}

// ReadFailed creates a new AppError for a failed read from an input stream.
func ReadFailed(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeReadFailed,
		Message: "reading input failed",
		Cause:   cause,
	}
}

// InvalidInput creates a new AppError for input that could not be parsed.
func InvalidInput(input, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", reason),
		Details: map[string]any{"input": input},
	}
}

// Validation creates a new AppError for arguments that failed validation.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// InvalidConfig creates a new AppError for configuration validation errors.
func InvalidConfig(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInvalidConfig,
		Message: message,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("The requested %s was not found.", resource),
		Details: details,
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "an unexpected error occurred",
		Cause:   cause,
	}
}

// Wrap converts any error into an AppError. AppErrors anywhere in the chain
// are returned as-is; other errors become INTERNAL_ERROR with err as cause.
func Wrap(err error) *AppError {
	if err == nil {
		return nil
	}
	if appErr, ok := AsAppError(err); ok {
		return appErr
	}
	return Internal(err)
}
