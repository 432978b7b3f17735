// Package apperr defines the error taxonomy shared by every handler:
// each failure carries a kind that maps to an HTTP status, and the echo
// error handler renders all of them as {"error": "..."} bodies.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	// Invalid marks a malformed or incomplete request payload (400).
	Invalid Kind = iota + 1
	// Forbidden marks an operation outside its allowed window (403).
	Forbidden
	// NotFound marks a lookup for an absent entity ID (404).
	NotFound
	// Conflict marks a uniqueness violation (409).
	Conflict
	// Storage marks an unreadable, unwritable, or corrupt backing store (500).
	Storage
)

// Status returns the HTTP status for the kind.
func (k Kind) Status() int {
	switch k {
	case Invalid:
		return http.StatusBadRequest
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case Storage:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// Error is a classified failure. Msg is the user-visible message written to
// the response body; Err, when set, preserves the underlying cause for logs.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// New returns a classified error with a user-visible message.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap classifies an underlying error, keeping it available via Unwrap.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the kind from an error chain; unclassified errors report
// Storage, the 500-equivalent.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}
