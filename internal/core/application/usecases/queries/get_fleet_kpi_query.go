package queries

import (
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrGetFleetKPIQueryIsNotConstructed = errors.New(
		"GetFleetKPIQuery must be created via NewGetFleetKPIQuery constructor",
	)
)

// GetFleetKPIQuery retrieves delivery figures for every driver on a given
// date, plus fleet-wide totals. Backs the dispatcher's daily overview board.
type GetFleetKPIQuery struct {
	date time.Time

	guard guard.ConstructorGuard
}

// NewGetFleetKPIQuery creates a fleet KPI query for the given date.
func NewGetFleetKPIQuery(date time.Time) GetFleetKPIQuery {
	return GetFleetKPIQuery{
		date:  date,
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetFleetKPIQuery) Validate() error {
	return q.guard.Validate(ErrGetFleetKPIQueryIsNotConstructed)
}

// Date returns the reference date.
func (q GetFleetKPIQuery) Date() time.Time {
	return q.date
}

// FleetDriverRow is one driver's line on the fleet board.
type FleetDriverRow struct {
	DriverID       kernel.UUID
	DriverName     string
	Rating         float64
	DailyTarget    int
	TodayDelivered int
	TargetMet      bool
}

// GetFleetKPIQueryResponse aggregates the fleet for one date.
type GetFleetKPIQueryResponse struct {
	Date           time.Time
	Drivers        []FleetDriverRow
	TotalDelivered int
	DriversOnRoad  int
}
