package ledger

import (
	"errors"
	"fmt"
)

// Kind classifies a ledger error so the transport layer can pick a status
// code without parsing messages.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindPrecondition
	KindCapacityExceeded
	KindConflict
	KindAuthorization
	KindNotFound
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindPrecondition:
		return "precondition"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindConflict:
		return "conflict"
	case KindAuthorization:
		return "authorization"
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	}
	return "unknown"
}

// Error is a kinded, user-presentable error. Messages never contain stack
// traces or internal identifiers.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Errf builds an Error with a formatted message.
func Errf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err is a ledger Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var le *Error
	return errors.As(err, &le) && le.Kind == kind
}
