package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the API surface. Validation, NotFound and
// Conflict are recoverable mutation rejections, InvalidQuery is a malformed
// read request, Store is an underlying storage failure and the only kind
// surfaced as a fatal error to the caller.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindInvalidQuery
	KindStore
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindInvalidQuery:
		return "invalid_query"
	case KindStore:
		return "store"
	}
	return "unknown"
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func InvalidQuery(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidQuery, Msg: fmt.Sprintf(format, args...)}
}

// Store wraps an underlying storage failure. The message stays generic so
// driver details do not leak into API responses.
func Store(err error) *Error {
	return &Error{Kind: KindStore, Msg: "storage error", Err: err}
}

// KindOf reports the kind of err, or KindStore if err is not an *Error.
// Unclassified errors are treated as storage failures rather than silently
// downgraded.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
