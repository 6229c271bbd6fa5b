// Package apperr provides the typed errors returned by the pricing services.
// The HTTP layer maps them to status codes and JSON error bodies.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind represents the category of error.
type Kind int

const (
	// KindInternal is the default: an unexpected failure.
	KindInternal Kind = iota
	// KindMethodNotAllowed indicates the request used an unsupported HTTP method.
	KindMethodNotAllowed
	// KindValidation indicates a missing or invalid request field.
	KindValidation
	// KindUnresolved indicates no search keyword could be derived from the request.
	KindUnresolved
	// KindUpstream indicates the marketplace API failed or returned a non-success status.
	KindUpstream
)

// Error is a domain error with a typed Kind for HTTP mapping.
type Error struct {
	Kind    Kind
	Message string
	Detail  string // Rendered as the "message" field of the response (optional)
	Op      string // Operation that failed (optional)
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, msg)
	}
	return msg
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error kind.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case KindValidation, KindUnresolved:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// New creates a new domain error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// WithOp sets the operation and returns the error.
func (e *Error) WithOp(op string) *Error {
	e.Op = op
	return e
}

// WithDetail sets the detail message and returns the error.
func (e *Error) WithDetail(detail string) *Error {
	e.Detail = detail
	return e
}

// Validation creates a validation error.
func Validation(message string) *Error {
	return New(KindValidation, message)
}

// Unresolved creates an error for requests that yield no search keyword.
func Unresolved(message string) *Error {
	return New(KindUnresolved, message)
}

// Upstream creates an error for a failed marketplace call.
func Upstream(message string) *Error {
	return New(KindUpstream, message)
}

// GetKind extracts the error kind from an error chain.
// Returns KindInternal if no *Error is found.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Is checks if err carries an *Error with the given kind.
func Is(err error, kind Kind) bool {
	return GetKind(err) == kind
}
