package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure the way the UI surfaces it: inline form error,
// login banner, safe-page redirect, or defensive reset.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindNotFound
	KindSystem
)

// Error is a failure with an HTTP-like status attached, so handlers and the
// mock transport never have to sniff message substrings to pick a code.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports bad user input (dimensions, quantities, forms).
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// Unauthorized reports a failed login attempt.
func Unauthorized(format string, args ...interface{}) *Error {
	return &Error{Kind: KindUnauthorized, Status: http.StatusUnauthorized, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an unmatched route, a missing line, or absent persisted data.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// System wraps an unexpected parse or storage failure.
func System(err error, format string, args ...interface{}) *Error {
	return &Error{Kind: KindSystem, Status: http.StatusInternalServerError, Message: fmt.Sprintf(format, args...), Err: err}
}

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func IsValidation(err error) bool   { return isKind(err, KindValidation) }
func IsUnauthorized(err error) bool { return isKind(err, KindUnauthorized) }
func IsNotFound(err error) bool     { return isKind(err, KindNotFound) }
func IsSystem(err error) bool       { return isKind(err, KindSystem) }

// StatusOf maps any error to the HTTP status the surface should report.
// Untyped errors count as system failures.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}
