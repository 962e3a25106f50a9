package ports

import (
	"context"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
)

// AssignmentRepository defines the persistence contract for broadcast
// assignments.
type AssignmentRepository interface {
	// Add persists a new assignment.
	Add(ctx context.Context, aggregate *order.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, aggregate *order.Assignment) error

	// GetPendingForResponse retrieves the pending assignment offering the
	// order to the driver. Returns ObjectNotFoundError when the driver holds
	// no offer for the order at all, and the latest responded assignment when
	// the offer was already answered so callers can distinguish the two.
	GetPendingForResponse(ctx context.Context, orderID, driverID kernel.UUID) (*order.Assignment, error)

	// GetByOrder retrieves every assignment for the order.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.Assignment, error)

	// GetPendingByDriver retrieves the driver's open offers.
	GetPendingByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Assignment, error)

	// DeleteByOrder removes every assignment for the order. A re-broadcast
	// clears prior offers before creating the new wave.
	DeleteByOrder(ctx context.Context, orderID kernel.UUID) error
}
