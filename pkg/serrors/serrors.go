// Package serrors provides semantic error kinds shared by the domain, the
// services and the HTTP boundary. A kind tells the boundary how to answer;
// the wrapped cause keeps the low-level detail for logs.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind sentinel.
func NewKind(name string) Kind { return kind{s: name} }

// Error taxonomy of the service.
var (
	// ErrValidation marks a field-level entity invariant violation.
	ErrValidation = NewKind("VALIDATION")
	// ErrInvalidArgument marks malformed request-level input, such as an
	// unknown status name or a missing required field.
	ErrInvalidArgument = NewKind("INVALID_ARGUMENT")
	// ErrNotFound indicates the referenced entity is absent.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrAlreadyExists indicates a uniqueness violation.
	ErrAlreadyExists = NewKind("ALREADY_EXISTS")
	// ErrUnauthorized indicates missing credentials or a credential mismatch.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrInternal indicates a store-level or otherwise unexpected failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error carries a kind, an optional wrapped cause and an optional message.
//
// errors.Is and errors.As match either the kind or anything in the cause
// chain. The string form is "<msg>: <cause>", "<msg>", "<cause>" or the kind
// name, depending on which parts are set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Internal returns err untouched when it already carries a kind, otherwise
// it wraps err as ErrInternal. Services use it at their boundary so typed
// failures pass through and unanticipated ones are normalized.
func Internal(err error, msgFmt string, args ...any) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != nil {
		return err
	}

	return Wrap(ErrInternal, err, msgFmt, args...)
}

// KindOf extracts the semantic kind from err, or nil if err has none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return nil
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel or the wrapped cause.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

// As assigns either the kind sentinel or a matching cause to target.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the semantic kind of the error.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to the error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }
