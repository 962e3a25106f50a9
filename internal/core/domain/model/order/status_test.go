package order_test

import (
	"testing"

	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Pending, "pending"},
		{order.Confirmed, "confirmed"},
		{order.PickupReady, "pickup_ready"},
		{order.InTransit, "in_transit"},
		{order.Delivered, "delivered"},
		{order.Cancelled, "cancelled"},
		{order.Unknown, "unknown"},
		{order.Status(99), "unknown"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every defined status", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.PickupReady,
			order.InTransit, order.Delivered, order.Cancelled,
		} {
			parsed, err := order.StatusFromString(s.String())

			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should fail on unknown name", func(t *testing.T) {
		parsed, err := order.StatusFromString("teleported")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Unknown, parsed)
	})

	t.Run("should not parse the unknown placeholder", func(t *testing.T) {
		_, err := order.StatusFromString("unknown")

		require.Error(t, err)
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should allow every defined edge", func(t *testing.T) {
		allowed := []struct{ from, to order.Status }{
			{order.Pending, order.Confirmed},
			{order.Pending, order.InTransit},
			{order.Pending, order.Cancelled},
			{order.Confirmed, order.PickupReady},
			{order.Confirmed, order.InTransit},
			{order.Confirmed, order.Cancelled},
			{order.PickupReady, order.InTransit},
			{order.PickupReady, order.Cancelled},
			{order.InTransit, order.Delivered},
			{order.InTransit, order.Cancelled},
		}

		for _, edge := range allowed {
			next, err := edge.from.TransitionTo(edge.to)

			require.NoError(t, err, "%s -> %s", edge.from, edge.to)
			assert.Equal(t, edge.to, next)
		}
	})

	t.Run("should reject edges outside the workflow", func(t *testing.T) {
		rejected := []struct{ from, to order.Status }{
			{order.Pending, order.Delivered},
			{order.Pending, order.PickupReady},
			{order.Confirmed, order.Delivered},
			{order.PickupReady, order.Confirmed},
			{order.InTransit, order.Pending},
			{order.Delivered, order.InTransit},
			{order.Delivered, order.Cancelled},
			{order.Cancelled, order.Pending},
		}

		for _, edge := range rejected {
			next, err := edge.from.TransitionTo(edge.to)

			require.Error(t, err, "%s -> %s", edge.from, edge.to)
			assert.ErrorIs(t, err, errs.ErrInvalidTransition)
			assert.Equal(t, order.Unknown, next)
		}
	})

	t.Run("should reject transition to unknown status", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Unknown)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Confirmed.IsTerminal())
	assert.False(t, order.PickupReady.IsTerminal())
	assert.False(t, order.InTransit.IsTerminal())
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should pass for defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Confirmed, order.PickupReady,
			order.InTransit, order.Delivered, order.Cancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("should fail for unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}
