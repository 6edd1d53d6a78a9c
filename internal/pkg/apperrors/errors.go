package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the transport boundary can map
// it to a response exactly once.
type Kind string

const (
	KindUnauthenticated Kind = "UNAUTHENTICATED" // missing/invalid/expired token
	KindForbidden       Kind = "FORBIDDEN"       // valid token, insufficient role
	KindNotFound        Kind = "NOT_FOUND"       // no such user/email/OTP record
	KindInvalid         Kind = "INVALID"         // OTP mismatch, malformed input
	KindExpired         Kind = "EXPIRED"         // OTP past TTL
	KindNotVerified     Kind = "NOT_VERIFIED"    // reset attempted before OTP verification
	KindConflict        Kind = "CONFLICT"        // duplicate username/email
	KindUnavailable     Kind = "UNAVAILABLE"     // OTP delivery failure
	KindInternal        Kind = "INTERNAL"        // everything else
)

// Error is the single tagged error type carried across layers. Field names
// the offending input field when one exists.
type Error struct {
	Kind    Kind
	Field   string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a tagged error.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewField creates a tagged error attributed to an input field.
func NewField(kind Kind, field, message string) *Error {
	return &Error{Kind: kind, Field: field, Message: message}
}

// Wrap attaches an underlying cause to a tagged error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// FieldOf extracts the field of err, if any.
func FieldOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// MessageOf extracts the client-safe message of err. Unclassified errors
// must not leak internals, so they collapse to a generic message.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
