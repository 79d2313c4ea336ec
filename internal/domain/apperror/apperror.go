package apperror

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every error crossing a usecase boundary wraps exactly one
// of these so callers can classify it with errors.Is without depending on
// message text.
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrConflict   = errors.New("conflict")
	ErrInternal   = errors.New("internal error")
)

// Error pairs a kind sentinel with a caller-facing message.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Unwrap exposes the kind so errors.Is(err, apperror.ErrNotFound) works.
func (e *Error) Unwrap() error { return e.kind }

// New builds an error of the given kind with a fixed message.
func New(kind error, msg string) error {
	return &Error{kind: kind, msg: msg}
}

// Newf builds an error of the given kind with a formatted message.
func Newf(kind error, format string, args ...interface{}) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap keeps the original cause in the chain while stamping a kind onto it.
func Wrap(kind error, cause error, msg string) error {
	return &Error{kind: kind, msg: fmt.Sprintf("%s: %v", msg, cause)}
}

// Internal marks a store or transport failure. The message is logged with
// full context by the caller and surfaced generically at the HTTP boundary.
func Internal(cause error, msg string) error {
	return Wrap(ErrInternal, cause, msg)
}
