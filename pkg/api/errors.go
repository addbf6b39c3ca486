package api

import "fmt"

// Code identifies the kind of an API error. The values are part of the wire
// contract and are returned to clients under extensions.code.
type Code string

const (
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeBadUserInput    Code = "BAD_USER_INPUT"
	CodeInternal        Code = "INTERNAL_SERVER_ERROR"
)

// Extensions carries machine-readable error metadata.
type Extensions struct {
	Code Code `json:"code"`
	// Fields holds one message per violated field constraint for
	// BAD_USER_INPUT errors.
	Fields []string `json:"fields,omitempty"`
}

// Error is the caller-visible API error shape:
// {"message": "...", "extensions": {"code": "..."}}
type Error struct {
	Message    string     `json:"message"`
	Extensions Extensions `json:"extensions"`
}

func (e *Error) Error() string {
	return e.Message
}

// HTTPStatus maps the error code to an HTTP status code.
func (e *Error) HTTPStatus() int {
	switch e.Extensions.Code {
	case CodeUnauthenticated:
		return 401
	case CodeForbidden:
		return 403
	case CodeNotFound:
		return 404
	case CodeBadUserInput:
		return 400
	default:
		return 500
	}
}

// Unauthenticated returns an error for requests with no valid identity.
func Unauthenticated(message string) *Error {
	return &Error{Message: message, Extensions: Extensions{Code: CodeUnauthenticated}}
}

// Forbidden returns an error for identities with an insufficient role.
func Forbidden(message string) *Error {
	return &Error{Message: message, Extensions: Extensions{Code: CodeForbidden}}
}

// NotFound returns an error for references to records that don't exist.
func NotFound(message string) *Error {
	return &Error{Message: message, Extensions: Extensions{Code: CodeNotFound}}
}

// BadUserInput returns an error for malformed or invalid request input.
// Field-level messages, if any, are exposed under extensions.fields.
func BadUserInput(message string, fields ...string) *Error {
	return &Error{Message: message, Extensions: Extensions{Code: CodeBadUserInput, Fields: fields}}
}

// Internal returns a generic internal error. The underlying cause is never
// exposed to the caller.
func Internal() *Error {
	return &Error{Message: "internal server error", Extensions: Extensions{Code: CodeInternal}}
}

// From converts any error into an *Error. Errors that already carry a code
// pass through unchanged; everything else maps to INTERNAL_SERVER_ERROR so
// that storage driver details never leak to callers.
func From(err error) *Error {
	if apiErr, ok := err.(*Error); ok {
		return apiErr
	}
	return Internal()
}

// Errorf is a convenience for formatted NOT_FOUND-style messages.
func Errorf(code Code, format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...), Extensions: Extensions{Code: code}}
}
