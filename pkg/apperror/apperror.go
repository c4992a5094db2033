// Package apperror defines the closed set of failure kinds the services
// return. Handlers map kinds to HTTP status codes in one place instead of
// matching on error strings.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind enumerates every failure category a service method may return.
type Kind int

const (
	Internal Kind = iota
	Validation
	Duplicate
	InvalidCredentials
	MissingToken
	InvalidToken
	TokenExpired
	UserNotFound
	NotFound
	Unavailable
)

// Error carries a failure kind, a client-safe message and an optional
// wrapped cause. Fields holds per-field validation messages when present.
type Error struct {
	Kind    Kind
	Message string
	Fields  []string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// StatusCode maps the kind to its HTTP status. The mapping is total:
// unknown kinds fall through to 500.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation, Duplicate, InvalidCredentials:
		return http.StatusBadRequest
	case MissingToken, InvalidToken, TokenExpired, UserNotFound:
		// UserNotFound covers a valid token whose account no longer exists;
		// the caller is unauthenticated either way.
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Unavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewValidation reports a request that failed field validation.
func NewValidation(message string, fields ...string) *Error {
	return &Error{Kind: Validation, Message: message, Fields: fields}
}

func NewDuplicate(message string) *Error { return New(Duplicate, message) }

// NewInvalidCredentials is deliberately undifferentiated: callers must not
// learn whether the email or the password was wrong.
func NewInvalidCredentials() *Error {
	return New(InvalidCredentials, "Invalid credentials")
}

func NewMissingToken() *Error {
	return New(MissingToken, "No token, authorization denied")
}

func NewInvalidToken() *Error { return New(InvalidToken, "Token is not valid") }

func NewTokenExpired() *Error { return New(TokenExpired, "Token expired") }

// NewUserNotFound reports a verified token whose subject account no longer
// exists. Tokens are not invalidated on account deletion, so this is reachable.
func NewUserNotFound() *Error { return New(UserNotFound, "User not found") }

func NewNotFound(message string) *Error { return New(NotFound, message) }

func NewUnavailable(message string, err error) *Error {
	return Wrap(Unavailable, message, err)
}

func NewInternal(message string, err error) *Error {
	return Wrap(Internal, message, err)
}

// From extracts an *Error from err, wrapping anything else as Internal so the
// boundary never leaks raw store errors.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal("Server error", err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
