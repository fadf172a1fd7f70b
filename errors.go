package chat

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies errors by the stage of a submit that produced them.
type ErrorCategory string

const (
	// ErrorConfiguration indicates a precondition failure detected before any
	// network call: missing credential, unsupported vendor, invalid token cap.
	ErrorConfiguration ErrorCategory = "configuration"

	// ErrorConnection indicates the vendor stream could not be opened or was
	// broken by the transport. Examples: auth rejected, connectivity failure.
	ErrorConnection ErrorCategory = "connection"

	// ErrorMalformedRequest indicates the request text could not be encoded
	// into a vendor payload.
	ErrorMalformedRequest ErrorCategory = "malformed_request"
)

// Error is a categorized error with metadata for error handling decisions.
type Error struct {
	Msg   string
	Cat   ErrorCategory
	Code  int   // HTTP status code, 0 if not applicable
	Cause error // underlying error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Cause)
	}
	return e.Msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Category returns the error category.
func (e *Error) Category() ErrorCategory {
	return e.Cat
}

// StatusCode returns the HTTP status code, or 0 if not applicable.
func (e *Error) StatusCode() int {
	return e.Code
}

// NewConfigurationError creates an error for a request that cannot be submitted.
func NewConfigurationError(msg string, cause error) *Error {
	return &Error{
		Msg:   msg,
		Cat:   ErrorConfiguration,
		Cause: cause,
	}
}

// NewConnectionError creates an error for a failed or broken vendor connection.
func NewConnectionError(msg string, statusCode int, cause error) *Error {
	return &Error{
		Msg:   msg,
		Cat:   ErrorConnection,
		Code:  statusCode,
		Cause: cause,
	}
}

// NewMalformedRequestError creates an error for text that cannot be encoded.
func NewMalformedRequestError(msg string, cause error) *Error {
	return &Error{
		Msg:   msg,
		Cat:   ErrorMalformedRequest,
		Cause: cause,
	}
}

func categoryOf(err error) ErrorCategory {
	var e *Error
	if errors.As(err, &e) {
		return e.Cat
	}
	return ""
}

// IsConfiguration returns true if the error or any wrapped error is a configuration error.
func IsConfiguration(err error) bool {
	return categoryOf(err) == ErrorConfiguration
}

// IsConnection returns true if the error or any wrapped error is a connection error.
func IsConnection(err error) bool {
	return categoryOf(err) == ErrorConnection
}

// IsMalformedRequest returns true if the error or any wrapped error is a malformed request error.
func IsMalformedRequest(err error) bool {
	return categoryOf(err) == ErrorMalformedRequest
}

// StatusCodeOf returns the HTTP status code from a categorized error, or 0.
func StatusCodeOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return 0
}
