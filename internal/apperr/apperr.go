// Package apperr classifies failures so handlers can pick a status code
// without parsing error strings.
package apperr

import (
	"errors"
	"fmt"
)

// Kind tags an error with its failure class.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUnauthorized
	KindRateLimited
)

// Error carries a client-safe message plus the underlying cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation reports a rejected request; no mutation was performed.
func Validation(msg string) error { return &Error{Kind: KindValidation, Msg: msg} }

// NotFound reports an unresolvable lookup key or a zero-row mutation.
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Msg: msg} }

// Conflict reports a uniqueness violation (e.g. duplicate username).
func Conflict(msg string) error { return &Error{Kind: KindConflict, Msg: msg} }

// Unauthorized reports a failed credential check.
func Unauthorized(msg string) error { return &Error{Kind: KindUnauthorized, Msg: msg} }

// RateLimited reports a request arriving inside a cooldown window.
func RateLimited(msg string) error { return &Error{Kind: KindRateLimited, Msg: msg} }

// Internal wraps a store or infrastructure failure. The message is what the
// client sees; the cause stays server-side.
func Internal(msg string, err error) error { return &Error{Kind: KindInternal, Msg: msg, Err: err} }

// KindOf extracts the Kind from err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Message returns the client-safe message for err. Untagged errors are
// masked; their detail belongs in the server log only.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "internal server error"
}
