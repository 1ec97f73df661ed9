package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrorType classifies a gateway failure. The values are recorded verbatim
// on the llm_requests audit row and on failed step rows.
type ErrorType string

const (
	ErrorTypeTimeout         ErrorType = "timeout"
	ErrorTypeRateLimited     ErrorType = "rate_limited"
	ErrorTypeTransport       ErrorType = "transport_error"
	ErrorTypeProvider        ErrorType = "provider_error"
	ErrorTypeInvalidResponse ErrorType = "invalid_response"
	ErrorTypeValidation      ErrorType = "validation_error"
	ErrorTypeCancelled       ErrorType = "cancelled"
	ErrorTypeInternal        ErrorType = "internal_error"
)

// Error is the gateway's error type. Retryable failures (rate_limited,
// timeout, transport_error) re-enter the retry loop; everything else is
// terminal for the call.
type Error struct {
	Type      ErrorType
	Message   string
	Retryable bool
	Err       error
}

// Error returns the formatted message.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm %s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("llm %s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a gateway error. Retryability follows the type.
func NewError(t ErrorType, message string, err error) *Error {
	return &Error{
		Type:      t,
		Message:   message,
		Retryable: t == ErrorTypeRateLimited || t == ErrorTypeTimeout || t == ErrorTypeTransport,
		Err:       err,
	}
}

// Classify maps an arbitrary error onto the gateway taxonomy. Provider
// implementations return *Error already; this catches context errors and
// anything that slipped through untyped.
func Classify(err error) *Error {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return NewError(ErrorTypeTimeout, "attempt deadline exceeded", err)
	case errors.Is(err, context.Canceled):
		return NewError(ErrorTypeCancelled, "call cancelled", err)
	default:
		return NewError(ErrorTypeInternal, "unexpected error", err)
	}
}

// TypeOf returns the taxonomy type of err, or internal_error for untyped
// errors.
func TypeOf(err error) ErrorType {
	return Classify(err).Type
}
