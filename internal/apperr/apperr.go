// Package apperr defines the error taxonomy shared by the ledger service
// and its HTTP layer.
//
// Domain code returns an *AppError for every failure a caller can act on;
// the HTTP layer maps it straight to a status code and a client-safe
// message. Unexpected errors are wrapped as Internal so their details stay
// in the server logs.
package apperr

import (
	"errors"
	"net/http"
)

// AppError carries an HTTP status code, a machine-readable code, and a
// client-safe message. Cause holds the underlying error for server-side
// logging only and is never sent to clients.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Cause      error
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows errors.Is and errors.As to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// Validation creates a 400 error for a user-correctable request problem.
// The message is surfaced verbatim to the caller.
func Validation(msg string) *AppError {
	return &AppError{
		Code:       "VALIDATION_ERROR",
		Message:    msg,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NotFound creates a 404 error.
func NotFound(msg string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    msg,
		HTTPStatus: http.StatusNotFound,
	}
}

// Forbidden creates a 403 error for an ownership mismatch.
func Forbidden(msg string) *AppError {
	return &AppError{
		Code:       "FORBIDDEN",
		Message:    msg,
		HTTPStatus: http.StatusForbidden,
	}
}

// Unavailable creates a 503 error for an unreachable backing store.
func Unavailable(msg string, cause error) *AppError {
	return &AppError{
		Code:       "UNAVAILABLE",
		Message:    msg,
		HTTPStatus: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// Internal creates a 500 error wrapping an unexpected server-side failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As extracts the *AppError from err's chain, or nil if there is none.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
