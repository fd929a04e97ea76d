package domain

import (
	"errors"
	"fmt"
)

// ErrorKind distinguishes lifecycle failures so callers can map them to
// transport-level responses without parsing messages.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrValidation
	ErrNotFound
	ErrForbidden
	ErrConflict
	ErrStoreUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case ErrValidation:
		return "validation"
	case ErrNotFound:
		return "not_found"
	case ErrForbidden:
		return "forbidden"
	case ErrConflict:
		return "conflict"
	case ErrStoreUnavailable:
		return "store_unavailable"
	default:
		return "unknown"
	}
}

// Error is the result type for failed lifecycle operations.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind carried by err, or ErrUnknown for foreign errors.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrUnknown
}
