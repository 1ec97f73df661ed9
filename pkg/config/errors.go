package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidYAML indicates YAML parsing failed
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrValidationFailed indicates configuration validation failed
	ErrValidationFailed = errors.New("configuration validation failed")
)

// ValidationError wraps a configuration validation failure with the field
// (or environment variable) that caused it.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns formatted error message
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config field '%s': %s", e.Field, e.Message)
}

// NewValidationError creates a validation error for a field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// LoadError wraps errors that occur while reading or parsing a config file.
type LoadError struct {
	File string
	Err  error
}

// Error returns formatted error message
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.File, e.Err)
}

// Unwrap returns the underlying error
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a load error for a file.
func NewLoadError(file string, err error) *LoadError {
	return &LoadError{File: file, Err: err}
}
