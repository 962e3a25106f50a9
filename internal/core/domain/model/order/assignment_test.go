package order_test

import (
	"testing"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignment(t *testing.T) {
	now := time.Now()

	t.Run("should create pending assignment", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		driverID := kernel.NewUUID()

		a, err := order.NewAssignment(id, orderID, driverID, now)

		require.NoError(t, err)
		require.NoError(t, a.Validate())
		assert.True(t, a.ID().IsEqual(id))
		assert.True(t, a.OrderID().IsEqual(orderID))
		assert.True(t, a.DriverID().IsEqual(driverID))
		assert.Equal(t, order.AssignmentPending, a.Status())
		assert.True(t, a.IsPending())
		assert.Equal(t, now, a.AssignedAt())
		assert.Nil(t, a.RespondedAt())
		assert.Empty(t, a.RejectReason())
	})

	t.Run("should fail with unconstructed IDs", func(t *testing.T) {
		var invalidID kernel.UUID

		a, err := order.NewAssignment(invalidID, invalidID, invalidID, now)

		require.Error(t, err)
		assert.Nil(t, a)
	})
}

func TestAssignment_Accept(t *testing.T) {
	now := time.Now()

	t.Run("should accept a pending assignment", func(t *testing.T) {
		a, _ := order.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)

		respondedAt := now.Add(time.Minute)
		err := a.Accept(respondedAt)

		require.NoError(t, err)
		assert.Equal(t, order.AssignmentAccepted, a.Status())
		assert.False(t, a.IsPending())
		require.NotNil(t, a.RespondedAt())
		assert.Equal(t, respondedAt, *a.RespondedAt())
	})

	t.Run("should conflict on second response", func(t *testing.T) {
		a, _ := order.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)
		require.NoError(t, a.Accept(now))

		err := a.Accept(now.Add(time.Second))

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.AssignmentAccepted, a.Status())
	})
}

func TestAssignment_Reject(t *testing.T) {
	now := time.Now()

	t.Run("should reject with a reason", func(t *testing.T) {
		a, _ := order.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)

		err := a.Reject(now, "too far away")

		require.NoError(t, err)
		assert.Equal(t, order.AssignmentRejected, a.Status())
		assert.Equal(t, "too far away", a.RejectReason())
		assert.NotNil(t, a.RespondedAt())
	})

	t.Run("should record cascade rejection reason", func(t *testing.T) {
		a, _ := order.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)

		require.NoError(t, a.Reject(now, order.ReasonOrderTaken))

		assert.Equal(t, "order already taken", a.RejectReason())
	})

	t.Run("should conflict when already accepted", func(t *testing.T) {
		a, _ := order.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), now)
		require.NoError(t, a.Accept(now))

		err := a.Reject(now, "changed my mind")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, order.AssignmentAccepted, a.Status())
		assert.Empty(t, a.RejectReason())
	})
}

func TestAssignmentStatusFromString(t *testing.T) {
	t.Run("should parse defined statuses", func(t *testing.T) {
		for _, s := range []order.AssignmentStatus{
			order.AssignmentPending, order.AssignmentAccepted, order.AssignmentRejected,
		} {
			parsed, err := order.AssignmentStatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should fail on unknown name", func(t *testing.T) {
		_, err := order.AssignmentStatusFromString("maybe")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreAssignment(t *testing.T) {
	respondedAt := time.Now()

	a := order.RestoreAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		order.AssignmentRejected,
		respondedAt.Add(-time.Minute), &respondedAt, order.ReasonOrderTaken,
	)

	require.NoError(t, a.Validate())
	assert.Equal(t, order.AssignmentRejected, a.Status())
	assert.Equal(t, order.ReasonOrderTaken, a.RejectReason())

	// restored responded assignment stays immutable
	require.Error(t, a.Accept(time.Now()))
}

func TestAssignment_Validate(t *testing.T) {
	t.Run("should fail for nil assignment", func(t *testing.T) {
		var a *order.Assignment

		assert.Equal(t, order.ErrAssignmentIsNotConstructed, a.Validate())
	})

	t.Run("should fail for zero value assignment", func(t *testing.T) {
		var a order.Assignment

		assert.Equal(t, order.ErrAssignmentIsNotConstructed, a.Validate())
	})
}
