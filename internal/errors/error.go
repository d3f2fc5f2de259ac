package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Error is the typed error returned by every client operation. It carries a
// standardized code, a human-readable message the UI can present directly,
// optional per-field details (validation), the HTTP status when the backend
// answered, and the wrapped cause.
type Error struct {
	Code       ErrorCode
	Message    string
	Details    []string
	HTTPStatus int
	cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the wrapped cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// ErrorOption is a functional option for configuring errors
type ErrorOption func(*Error)

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(e *Error) {
		e.Message = message
	}
}

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(e *Error) {
		e.Details = details
	}
}

// WithCause wraps an underlying error
func WithCause(cause error) ErrorOption {
	return func(e *Error) {
		e.cause = cause
	}
}

// WithHTTPStatus records the HTTP status the backend answered with
func WithHTTPStatus(status int) ErrorOption {
	return func(e *Error) {
		e.HTTPStatus = status
	}
}

// New creates a typed error for the given code with its default message.
// Optional settings are applied using functional options.
func New(code ErrorCode, opts ...ErrorOption) *Error {
	e := &Error{
		Code:    code,
		Message: GetErrorMessage(code),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewValidationError creates a validation error from the ordered list of
// rule failures. The first failure becomes the presented message, matching
// how the create screen surfaces only the first problem.
func NewValidationError(details []string) *Error {
	e := New(ValidationGeneral, WithDetails(details...))
	if len(details) > 0 {
		e.Message = details[0]
	}
	return e
}

// NewNetworkError wraps a transport-level failure
func NewNetworkError(cause error) *Error {
	return New(NetworkRequestFailed, WithCause(cause))
}

// NewAPIError creates an application error for a non-2xx answer, preferring
// the server-provided message when one exists.
func NewAPIError(httpStatus int, serverMessage string) *Error {
	opts := []ErrorOption{WithHTTPStatus(httpStatus)}
	if serverMessage != "" {
		opts = append(opts, WithMessage(serverMessage))
	}
	return New(APIRequestRejected, opts...)
}

// NewDecodeError wraps a malformed-response failure
func NewDecodeError(cause error) *Error {
	return New(DecodeInvalidJSON, WithCause(cause))
}

// CodeOf extracts the error code from any error in the chain, or returns an
// empty code when the error is not a client error.
func CodeOf(err error) ErrorCode {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return ""
}

func hasCodePrefix(err error, prefix string) bool {
	return strings.HasPrefix(string(CodeOf(err)), prefix)
}

// IsValidation reports whether the error is a local validation failure
func IsValidation(err error) bool {
	return hasCodePrefix(err, "VALIDATION_")
}

// IsNetwork reports whether the error is a transport failure
func IsNetwork(err error) bool {
	return hasCodePrefix(err, "NETWORK_")
}

// IsAPI reports whether the backend answered with a failure
func IsAPI(err error) bool {
	return hasCodePrefix(err, "API_")
}

// IsDecode reports whether the backend response could not be decoded
func IsDecode(err error) bool {
	return hasCodePrefix(err, "DECODE_")
}
