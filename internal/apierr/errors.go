// Package apierr defines the typed error surface services hand to the
// transport layer. Each error carries a stable code, a client-safe message
// and the HTTP status it maps to. Password hashes and the signing secret
// must never appear in these messages.
package apierr

import "net/http"

// Code identifies an error kind independently of its message.
type Code string

const (
	CodeEmailTaken         Code = "email_taken"
	CodeInvalidCredentials Code = "invalid_credentials"
	CodeMissingToken       Code = "missing_authorization_token"
	CodeInvalidToken       Code = "invalid_authorization_token"
	CodeBookmarkNotFound   Code = "bookmark_not_found"
	CodeAccessDenied       Code = "access_denied"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeHashingFailure     Code = "hashing_failure"
	CodeSigningFailure     Code = "signing_failure"
	CodeInternal           Code = "internal_error"
)

// Error is an API error with a transport mapping.
type Error struct {
	Code       Code
	Message    string
	HTTPStatus int
	cause      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is makes two API errors equal when their codes match, so callers can
// compare against a constructor result with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// NewErrEmailTaken reports a duplicate email on signup.
func NewErrEmailTaken() *Error {
	return &Error{Code: CodeEmailTaken, Message: "email already exists", HTTPStatus: http.StatusConflict}
}

// NewErrInvalidCredentials covers both unknown email and wrong password.
// One message for both, so a caller cannot enumerate accounts.
func NewErrInvalidCredentials() *Error {
	return &Error{Code: CodeInvalidCredentials, Message: "invalid email or password", HTTPStatus: http.StatusUnauthorized}
}

// NewErrMissingAuthorizationToken reports an absent or empty bearer token.
func NewErrMissingAuthorizationToken() *Error {
	return &Error{Code: CodeMissingToken, Message: "missing authorization token", HTTPStatus: http.StatusUnauthorized}
}

// NewErrInvalidAuthorizationToken covers malformed, tampered and expired
// tokens alike; the distinction stays internal.
func NewErrInvalidAuthorizationToken() *Error {
	return &Error{Code: CodeInvalidToken, Message: "invalid authorization token", HTTPStatus: http.StatusUnauthorized}
}

// NewErrBookmarkNotFound reports a bookmark id that does not exist.
func NewErrBookmarkNotFound() *Error {
	return &Error{Code: CodeBookmarkNotFound, Message: "bookmark not found", HTTPStatus: http.StatusNotFound}
}

// NewErrAccessDenied reports an ownership mismatch. The external shape is
// identical to NewErrBookmarkNotFound so a caller cannot probe whether a
// foreign bookmark id exists; the code keeps the kinds distinct internally.
func NewErrAccessDenied() *Error {
	return &Error{Code: CodeAccessDenied, Message: "bookmark not found", HTTPStatus: http.StatusNotFound}
}

// NewErrInvalidArgument reports a malformed request at the handler boundary.
func NewErrInvalidArgument(message string) *Error {
	return &Error{Code: CodeInvalidArgument, Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewErrHashingFailure wraps an internal password hashing failure.
func NewErrHashingFailure(cause error) *Error {
	return &Error{Code: CodeHashingFailure, Message: "internal server error", HTTPStatus: http.StatusInternalServerError, cause: cause}
}

// NewErrSigningFailure wraps an internal token signing failure.
func NewErrSigningFailure(cause error) *Error {
	return &Error{Code: CodeSigningFailure, Message: "internal server error", HTTPStatus: http.StatusInternalServerError, cause: cause}
}

// NewErrInternal wraps any other unexpected failure.
func NewErrInternal(cause error) *Error {
	return &Error{Code: CodeInternal, Message: "internal server error", HTTPStatus: http.StatusInternalServerError, cause: cause}
}
