package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// ConfigError represents an invalid combination of generation parameters,
// such as specifying both an end bound and a length, or neither. It indicates
// that the request cannot be evaluated as given.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// TypeError reports an argument whose dynamic type is not acceptable for the
// field it was supplied for (for example a string where a number is required).
// The rejected value is kept in its formatted form so the error stays
// comparable whatever was passed in.
type TypeError struct {
	// Field is the name of the offending argument.
	Field string
	// Expected describes the accepted kind of value ("a number", "an integer").
	Expected string
	// Type is the Go type of the rejected value.
	Type string
	// Value is the rejected value formatted with %v.
	Value string
}

// NewTypeError creates a TypeError for the given field and rejected value.
func NewTypeError(field, expected string, v any) TypeError {
	return TypeError{
		Field:    field,
		Expected: expected,
		Type:     fmt.Sprintf("%T", v),
		Value:    fmt.Sprintf("%v", v),
	}
}

// Error returns a formatted message naming the field, the expected kind and
// the rejected value with its Go type.
func (e TypeError) Error() string {
	return fmt.Sprintf("type error for %q: expected %s, got %s (%s)", e.Field, e.Expected, e.Type, e.Value)
}

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// OverflowError reports a sequence term that cannot be represented as an
// int64. Index is the zero-based position of the term; A and B are the two
// preceding terms whose sum overflowed.
type OverflowError struct {
	Index int
	A     int64
	B     int64
}

// Error returns a formatted message describing the overflow.
func (e OverflowError) Error() string {
	return fmt.Sprintf("overflow error: term %d (%d + %d) exceeds the int64 range", e.Index, e.A, e.B)
}

// CalculationError encapsulates a generation failure while preserving the
// original cause, so callers can still reach the typed error underneath.
type CalculationError struct {
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// Kind classifies err into one of the short, stable names used as a metrics
// label and log field: "config_error", "type_error", "validation_error",
// "overflow", "canceled" for context errors, "error" for anything else, and
// "" for nil.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var (
		configErr     ConfigError
		typeErr       TypeError
		validationErr ValidationError
		overflowErr   OverflowError
	)
	switch {
	case errors.As(err, &configErr):
		return "config_error"
	case errors.As(err, &typeErr):
		return "type_error"
	case errors.As(err, &validationErr):
		return "validation_error"
	case errors.As(err, &overflowErr):
		return "overflow"
	case IsContextError(err):
		return "canceled"
	default:
		return "error"
	}
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
