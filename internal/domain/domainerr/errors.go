// Package domainerr holds the closed set of failures the identity core may return.
package domainerr

import (
	"errors"
	"strings"
)

type Kind uint8

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindNotFound
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "Validation"
	case KindConflict:
		return "Conflict"
	case KindNotFound:
		return "NotFound"
	case KindForbidden:
		return "Forbidden"
	default:
		return "Unknown"
	}
}

// Error is immutable once built: fields are only set by the constructors below.
type Error struct {
	kind    Kind
	message string
	cause   error
}

func Validation(message string) *Error { return &Error{kind: KindValidation, message: message} }
func Conflict(message string) *Error   { return &Error{kind: KindConflict, message: message} }
func NotFound(message string) *Error   { return &Error{kind: KindNotFound, message: message} }
func Forbidden(message string) *Error  { return &Error{kind: KindForbidden, message: message} }

// ConflictWith keeps the lower-level cause reachable through errors.Unwrap.
func ConflictWith(message string, cause error) *Error {
	return &Error{kind: KindConflict, message: message, cause: cause}
}

func (e *Error) Kind() Kind      { return e.kind }
func (e *Error) Message() string { return e.message }
func (e *Error) Unwrap() error   { return e.cause }

func (e *Error) Error() string {
	return strings.ToLower(e.kind.String()) + ": " + e.message
}

// Is reports kind equality, so errors.Is(err, domainerr.NotFound("")) matches
// any not-found error regardless of its message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// KindOf returns the kind of the first domain error in err's chain.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.kind, true
	}
	return 0, false
}

func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}
