// Package apperrors defines structured error types for sequence generation,
// allowing for a clear distinction between error classes (configuration,
// argument type, validation, numeric range) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types are comparable values and work with errors.Is() and errors.As().
package apperrors
