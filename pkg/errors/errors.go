// Package errors provides kinded errors for the deskd service boundary.
//
// External collaborators (the data API and the pricing engine) fail in ways
// the HTTP layer needs to tell apart: an expired session short-circuits to an
// empty result, a transport failure surfaces as a gateway error. Everything
// else is opaque.
package errors

import (
	"errors"
	"fmt"
)

// Standard error functions
var (
	Is     = errors.Is
	As     = errors.As
	Join   = errors.Join
	Unwrap = errors.Unwrap
)

// Kind classifies an error for the service boundary.
type Kind string

const (
	// KindAuthExpired marks a session token past its expiry. Callers treat
	// it as "no data", not as a failure.
	KindAuthExpired Kind = "auth_expired"
	// KindTransport marks a network or decode failure against an external
	// service. The enclosing operation aborts; no retry is attempted here.
	KindTransport Kind = "transport"
	// KindBadRequest marks invalid caller input on the HTTP surface.
	KindBadRequest Kind = "bad_request"
	// KindNotFound marks a missing resource on the HTTP surface.
	KindNotFound Kind = "not_found"
	// KindUnknown is the zero classification.
	KindUnknown Kind = "unknown"
)

// Error is a kinded error carrying an optional cause.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`

	cause error
}

var _ error = (*Error)(nil)

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches two kinded errors by Kind, so sentinel comparisons like
// errors.Is(err, &Error{Kind: KindTransport}) work across wrapping.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Kind == t.Kind
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a kind and message to an underlying cause. A nil cause
// returns nil so call sites can wrap unconditionally.
func Wrap(err error, kind Kind, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Message: message, cause: err}
}

// KindOf reports the Kind of err, or KindUnknown for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
