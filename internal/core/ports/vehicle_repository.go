package ports

import (
	"context"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	// Returns ObjectNotFoundError when no such vehicle exists.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetClaimableByDriver resolves the vehicle a driver would use for a
	// delivery or charging session: the driver's currently assigned, claimable
	// vehicle. Returns ObjectNotFoundError when the driver has none.
	GetClaimableByDriver(ctx context.Context, driverID kernel.UUID) (*vehicle.Vehicle, error)
}
