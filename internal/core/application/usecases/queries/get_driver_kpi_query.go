// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and bypass the
// domain aggregates, reading projections straight from the database.
package queries

import (
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrGetDriverKPIQueryIsNotConstructed = errors.New(
		"GetDriverKPIQuery must be created via NewGetDriverKPIQuery constructor",
	)
)

// GetDriverKPIQuery retrieves delivery performance figures for one driver on
// a given date. Counts are recomputed from the orders table rather than read
// from the driver's cached counter, so the projection cannot drift from the
// source of truth.
type GetDriverKPIQuery struct {
	driverID kernel.UUID
	date     time.Time

	guard guard.ConstructorGuard
}

// NewGetDriverKPIQuery creates a KPI query for the driver on the given date.
func NewGetDriverKPIQuery(driverID kernel.UUID, date time.Time) (GetDriverKPIQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDriverKPIQuery{}, err
	}

	return GetDriverKPIQuery{
		driverID: driverID,
		date:     date,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverKPIQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverKPIQueryIsNotConstructed)
}

// DriverID returns the driver being inspected.
func (q GetDriverKPIQuery) DriverID() kernel.UUID {
	return q.driverID
}

// Date returns the reference date for the daily and monthly windows.
func (q GetDriverKPIQuery) Date() time.Time {
	return q.date
}

// GetDriverKPIQueryResponse is the driver performance read model.
type GetDriverKPIQueryResponse struct {
	DriverID   kernel.UUID
	DriverName string
	Rating     float64

	TotalDelivered int
	TodayDelivered int
	MonthDelivered int

	PendingAssignments int
	InTransitOrders    int

	DailyTarget int
	TargetMet   bool
}
