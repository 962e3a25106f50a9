package queries

import (
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrGetActiveSessionQueryIsNotConstructed = errors.New(
		"GetActiveSessionQuery must be created via NewGetActiveSessionQuery constructor",
	)
)

// GetActiveSessionQuery retrieves a driver's in-progress charging session.
// A driver has at most one running session by invariant, so the response is a
// single row or NotFound.
type GetActiveSessionQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetActiveSessionQuery creates an active-session query for the driver.
func NewGetActiveSessionQuery(driverID kernel.UUID) (GetActiveSessionQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetActiveSessionQuery{}, err
	}

	return GetActiveSessionQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionQueryIsNotConstructed)
}

// DriverID returns the driver being inspected.
func (q GetActiveSessionQuery) DriverID() kernel.UUID {
	return q.driverID
}

// GetActiveSessionQueryResponse is the running-session read model.
type GetActiveSessionQueryResponse struct {
	SessionID    kernel.UUID
	VehicleID    kernel.UUID
	DepotID      kernel.UUID
	DepotName    string
	PortNumber   int
	StartTime    time.Time
	StartBattery int
}
