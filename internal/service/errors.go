package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindTransient      Kind = "transient"
	KindAuthentication Kind = "authentication"
	KindForbidden      Kind = "forbidden"
)

// Error is the failure returned by every service operation.
type Error struct {
	Kind    Kind   // Machine-readable class
	Op      string // Operation that failed, e.g. "expenses.create"
	Message string // Human-readable message
	Err     error  // Wrapped cause, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is. Only the Kind is compared.
var (
	ErrValidation     = &Error{Kind: KindValidation, Message: "validation failed"}
	ErrNotFound       = &Error{Kind: KindNotFound, Message: "not found"}
	ErrConflict       = &Error{Kind: KindConflict, Message: "conflict"}
	ErrTransient      = &Error{Kind: KindTransient, Message: "transient failure"}
	ErrAuthentication = &Error{Kind: KindAuthentication, Message: "authentication failed"}
	ErrForbidden      = &Error{Kind: KindForbidden, Message: "forbidden"}
)

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Message: fmt.Sprintf(format, args...)}
}

func validationError(op, msg string) *Error {
	return &Error{Kind: KindValidation, Op: op, Message: msg}
}

func notFoundError(op, entity, id string) *Error {
	return newError(KindNotFound, op, "%s with ID %q not found.", entity, id)
}

// KindOf returns the kind of the first *Error in err's chain, or "" when
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsRetryable reports whether err is a transient failure worth retrying.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient)
}
