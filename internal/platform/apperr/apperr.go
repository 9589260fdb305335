package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error well enough for a transport layer to pick a status
// without this package knowing anything about HTTP.
type Kind int

const (
	KindUnknown Kind = iota
	// KindInvalidReference marks a malformed or non-existent identifier.
	KindInvalidReference
	// KindValidation marks missing or out-of-range input (bad sort key, bad page).
	KindValidation
	// KindSelfReference marks a relation whose source and target are the same entity.
	KindSelfReference
	// KindNotFound marks an absent root entity of a single-item view.
	KindNotFound
	// KindConflict marks a store-level constraint violation that was not
	// self-resolved. The toggle path resolves its own conflicts, so this
	// should not surface from it.
	KindConflict
	// KindUnavailable marks a transient store failure. Retry policy belongs to
	// the caller.
	KindUnavailable
)

type Error struct {
	Kind Kind
	Code string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return e.Code
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, code string, err error) *Error {
	return &Error{Kind: kind, Code: code, Err: err}
}

func InvalidReference(code string) *Error {
	return &Error{Kind: KindInvalidReference, Code: code}
}

func Validation(code string) *Error {
	return &Error{Kind: KindValidation, Code: code}
}

func SelfReference(code string) *Error {
	return &Error{Kind: KindSelfReference, Code: code}
}

func NotFound(code string) *Error {
	return &Error{Kind: KindNotFound, Code: code}
}

func Conflict(code string, err error) *Error {
	return &Error{Kind: KindConflict, Code: code, Err: err}
}

func Unavailable(code string, err error) *Error {
	return &Error{Kind: KindUnavailable, Code: code, Err: err}
}

// KindOf unwraps err looking for an *Error and returns its kind.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindUnknown
}

// CodeOf unwraps err looking for an *Error and returns its code.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "internal"
}
