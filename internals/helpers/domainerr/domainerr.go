// file: internals/helpers/domainerr/domainerr.go
package domainerr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind adalah taksonomi error domain (tertutup).
type Kind string

const (
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindNotFound               Kind = "NOT_FOUND"
	KindTooManyPendingRequests Kind = "TOO_MANY_PENDING_REQUESTS"
	KindDuplicateBrokerageFee  Kind = "DUPLICATE_BROKERAGE_FEE"
	KindNoActivePolicy         Kind = "NO_ACTIVE_POLICY"
	KindPermissionDenied       Kind = "PERMISSION_DENIED"
	KindPersistenceFailure     Kind = "PERSISTENCE_FAILURE"
)

// Error membawa kind + pesan untuk caller (UI layer yang memformat).
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Persistence membungkus error store; op menyebut operasi yang gagal,
// tidak pernah ditelan diam-diam.
func Persistence(op string, err error) *Error {
	return &Error{Kind: KindPersistenceFailure, Message: "gagal " + op, Err: err}
}

// KindOf mengembalikan kind dari error (atau "" kalau bukan domain error).
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool { return KindOf(err) == kind }

// HTTPStatus memetakan kind → status HTTP untuk layer controller.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidStateTransition:
		return fiber.StatusConflict
	case KindTooManyPendingRequests:
		return fiber.StatusUnprocessableEntity
	case KindDuplicateBrokerageFee:
		return fiber.StatusConflict
	case KindNoActivePolicy:
		return fiber.StatusUnprocessableEntity
	case KindPermissionDenied:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}
