package ports

import (
	"context"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/core/domain/model/kernel"
)

// DepotRepository defines the persistence contract for depots and their
// charging ports.
type DepotRepository interface {
	// AddDepot persists a new depot.
	AddDepot(ctx context.Context, aggregate *charging.Depot) error

	// GetDepot retrieves a depot by its unique identifier.
	// Returns ObjectNotFoundError when no such depot exists.
	GetDepot(ctx context.Context, id kernel.UUID) (*charging.Depot, error)

	// AddPort persists a new charging port.
	AddPort(ctx context.Context, aggregate *charging.ChargingPort) error

	// UpdatePort persists changes to an existing charging port.
	UpdatePort(ctx context.Context, aggregate *charging.ChargingPort) error

	// GetPort retrieves a charging port by its unique identifier.
	// Returns ObjectNotFoundError when no such port exists.
	GetPort(ctx context.Context, id kernel.UUID) (*charging.ChargingPort, error)

	// GetPortsByDepot retrieves a depot's ports ordered by port number.
	GetPortsByDepot(ctx context.Context, depotID kernel.UUID) ([]*charging.ChargingPort, error)
}

// SessionRepository defines the persistence contract for charging sessions.
type SessionRepository interface {
	// Add persists a new charging session.
	Add(ctx context.Context, aggregate *charging.ChargingSession) error

	// Update persists changes to an existing charging session.
	Update(ctx context.Context, aggregate *charging.ChargingSession) error

	// Get retrieves a session by its unique identifier.
	// Returns ObjectNotFoundError when no such session exists.
	Get(ctx context.Context, id kernel.UUID) (*charging.ChargingSession, error)

	// GetInProgressByDriver retrieves the driver's running session, if any.
	// Returns ObjectNotFoundError when the driver has none.
	GetInProgressByDriver(ctx context.Context, driverID kernel.UUID) (*charging.ChargingSession, error)
}
