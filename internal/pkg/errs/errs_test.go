package errs_test

import (
	"errors"
	"testing"

	"greenfleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("pickup address")

		assert.Equal(t, "pickup address", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: pickup address", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("pickup address", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: pickup address (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("battery level", 150, 0, 100)

		assert.Equal(t, "battery level", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 0, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, "value is invalid: 150 is battery level, min value is 0, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("delivery address")

	assert.Equal(t, "delivery address", err.ParamName)
	assert.Equal(t, "value is required: delivery address", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	t.Run("NewInvalidStateError", func(t *testing.T) {
		err := errs.NewInvalidStateError("broadcast", "in_transit")

		assert.Equal(t, "broadcast", err.Operation)
		assert.Equal(t, "in_transit", err.State)
		assert.Equal(t,
			"operation is not allowed in the current state: broadcast is not allowed while in_transit",
			err.Error())
		assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("delivered", "in_transit")

	assert.Equal(t, "delivered", err.From)
	assert.Equal(t, "in_transit", err.To)
	assert.Equal(t, "status transition is not allowed: delivered -> in_transit", err.Error())
	assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("order already taken")

		assert.Equal(t, "order already taken", err.Reason)
		assert.Equal(t, "operation conflicts with the current state: order already taken", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("row version mismatch")
		err := errs.NewConflictErrorWithCause("session already completed", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Contains(t, err.Error(), "session already completed")
		assert.Contains(t, err.Error(), "row version mismatch")
	})
}

func TestResourceUnavailableError(t *testing.T) {
	err := errs.NewResourceUnavailableError("charging port", 7)

	assert.Equal(t, "charging port", err.Resource)
	assert.Equal(t, 7, err.ID)
	assert.Equal(t, "resource is not available: charging port 7", err.Error())
	assert.Equal(t, errs.ErrResourceUnavailable, err.Unwrap())
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("driver d-1", "order o-9")

	assert.Equal(t, "actor is not allowed to perform this operation: driver d-1 on order o-9", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestUnavailableError(t *testing.T) {
	cause := errors.New("dial tcp: i/o timeout")
	err := errs.NewUnavailableError("entity store", cause)

	assert.Equal(t, "entity store", err.Dependency)
	assert.Equal(t, cause, err.Cause)
	assert.Equal(t, "dependency is unavailable: entity store (cause: dial tcp: i/o timeout)", err.Error())
	assert.Equal(t, errs.ErrUnavailable, err.Unwrap())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("address"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsRequiredError("address"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("level", 101, 0, 100), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewInvalidStateError("checkin", "pending"), errs.ErrInvalidState)
	require.ErrorIs(t, errs.NewInvalidTransitionError("delivered", "pending"), errs.ErrInvalidTransition)
	require.ErrorIs(t, errs.NewConflictError("order already taken"), errs.ErrConflict)
	require.ErrorIs(t, errs.NewResourceUnavailableError("charging port", 7), errs.ErrResourceUnavailable)
	require.ErrorIs(t, errs.NewForbiddenError("driver", "order"), errs.ErrForbidden)
	require.ErrorIs(t, errs.NewUnavailableError("entity store", nil), errs.ErrUnavailable)
}
