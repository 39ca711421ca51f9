package apperror

import (
	"errors"
	"net/http"
)

// Error carries an HTTP status alongside the message so the handler boundary
// can translate failures into the uniform error envelope.
type Error struct {
	Code    int
	Message string
	Errs    []string
}

func (e *Error) Error() string {
	return e.Message
}

func New(code int, message string, errs ...string) *Error {
	return &Error{Code: code, Message: message, Errs: errs}
}

// Validation covers missing/blank required fields and malformed identifiers.
func Validation(message string, errs ...string) *Error {
	return New(http.StatusBadRequest, message, errs...)
}

// Unauthorized covers missing or invalid credentials.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden covers acting-user-is-not-owner violations.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound covers referenced entities that do not exist.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict covers uniqueness violations such as duplicate usernames.
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Server covers unexpected absence of an expected read/write result.
func Server(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// StatusOf resolves the HTTP status for any error. Errors outside the
// taxonomy map to 500.
func StatusOf(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// AsError unwraps err into a taxonomy error when possible.
func AsError(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
