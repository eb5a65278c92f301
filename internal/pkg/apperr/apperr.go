// Package apperr defines the HTTP facing error type returned by application
// services. The REST layer renders it as {"detail": "..."} with its status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDatabase marks failures raised by the persistence layer.
var ErrDatabase = errors.New("database operation failed")

// Error carries a status code, a client facing detail and optional headers.
type Error struct {
	Status  int
	Detail  string
	Headers map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Detail, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an Error with the given status and detail.
func New(status int, detail string) *Error {
	return &Error{Status: status, Detail: detail}
}

// NotFound reports a missing resource.
func NotFound(format string, args ...interface{}) *Error {
	return New(http.StatusNotFound, fmt.Sprintf(format, args...))
}

// BadRequest reports a request that violates a business rule.
func BadRequest(format string, args ...interface{}) *Error {
	return New(http.StatusBadRequest, fmt.Sprintf(format, args...))
}

// Unauthorized reports failed authentication and asks the client to use scheme.
func Unauthorized(scheme, detail string) *Error {
	e := New(http.StatusUnauthorized, detail)
	e.Headers = map[string]string{"WWW-Authenticate": scheme}
	return e
}

// Unprocessable reports a request whose parameters or body failed validation.
func Unprocessable(format string, args ...interface{}) *Error {
	return New(http.StatusUnprocessableEntity, fmt.Sprintf(format, args...))
}

// Internal hides err behind a generic detail.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Detail: "Internal server error", Err: err}
}

// Wrap attaches the underlying cause to e and returns it.
func (e *Error) Wrap(err error) *Error {
	e.Err = err
	return e
}

// From converts any error into an *Error. Database failures become a 500 with
// a fixed detail; unknown errors become a generic 500.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if errors.Is(err, ErrDatabase) {
		return &Error{Status: http.StatusInternalServerError, Detail: "Database operation failed", Err: err}
	}
	return Internal(err)
}

// Database wraps a driver error so that From maps it to a database failure.
func Database(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrDatabase, err)
}
