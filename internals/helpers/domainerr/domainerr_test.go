// file: internals/helpers/domainerr/domainerr_test.go
package domainerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestKindOf_UnwrapsNestedError(t *testing.T) {
	inner := New(KindNotFound, "tidak ditemukan")
	wrapped := fmt.Errorf("lapisan luar: %w", inner)

	assert.Equal(t, KindNotFound, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindNotFound))
	assert.False(t, Is(wrapped, KindPermissionDenied))
}

func TestKindOf_NonDomainError(t *testing.T) {
	assert.Equal(t, Kind(""), KindOf(errors.New("biasa")))
}

func TestPersistence_KeepsCause(t *testing.T) {
	cause := errors.New("koneksi putus")
	err := Persistence("menyimpan kontrak", cause)

	assert.Equal(t, KindPersistenceFailure, err.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindNotFound:               fiber.StatusNotFound,
		KindInvalidStateTransition: fiber.StatusConflict,
		KindTooManyPendingRequests: fiber.StatusUnprocessableEntity,
		KindDuplicateBrokerageFee:  fiber.StatusConflict,
		KindNoActivePolicy:         fiber.StatusUnprocessableEntity,
		KindPermissionDenied:       fiber.StatusForbidden,
		KindPersistenceFailure:     fiber.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), string(kind))
	}
}
