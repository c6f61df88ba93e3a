package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Sequence errors
const (
	// ErrCodeEmptySequence indicates the first element of an empty sequence was requested.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeNotReplayable indicates a view that must be iterated twice is single-pass.
	ErrCodeNotReplayable ErrorCode = "NOT_REPLAYABLE"
	// ErrCodeUnsupportedShape indicates a container type offers no way to be filled.
	ErrCodeUnsupportedShape ErrorCode = "UNSUPPORTED_SHAPE"
	// ErrCodeReadFailed indicates the underlying stream reported a read error.
	ErrCodeReadFailed ErrorCode = "READ_FAILED"
)

// Input and configuration errors
const (
	// ErrCodeInvalidInput indicates puzzle input could not be parsed.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidConfig indicates the runner configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeNotFound indicates a requested puzzle or file does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
