package ports

import (
	"context"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their append-only tracking history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStalePending retrieves Pending orders created before the cutoff that
	// have no outstanding pending assignments. Used by the re-broadcast job.
	GetStalePending(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// AddTracking appends a history entry for an order.
	AddTracking(ctx context.Context, entry *order.TrackingEntry) error

	// GetTracking retrieves an order's history in chronological order.
	GetTracking(ctx context.Context, orderID kernel.UUID) ([]*order.TrackingEntry, error)
}
