package queries

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrGetDepotStatsQueryIsNotConstructed = errors.New(
		"GetDepotStatsQuery must be created via NewGetDepotStatsQuery constructor",
	)
)

// GetDepotStatsQuery retrieves the port occupancy breakdown for one depot.
type GetDepotStatsQuery struct {
	depotID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDepotStatsQuery creates a stats query for the depot.
func NewGetDepotStatsQuery(depotID kernel.UUID) (GetDepotStatsQuery, error) {
	if err := depotID.Validate(); err != nil {
		return GetDepotStatsQuery{}, err
	}

	return GetDepotStatsQuery{
		depotID: depotID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDepotStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetDepotStatsQueryIsNotConstructed)
}

// DepotID returns the depot being inspected.
func (q GetDepotStatsQuery) DepotID() kernel.UUID {
	return q.depotID
}

// GetDepotStatsQueryResponse is the depot occupancy read model.
type GetDepotStatsQueryResponse struct {
	DepotID kernel.UUID
	Name    string
	Active  bool

	TotalPorts       int
	AvailablePorts   int
	OccupiedPorts    int
	MaintenancePorts int
	OfflinePorts     int

	ActiveSessions int
}
