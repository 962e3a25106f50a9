package queries

import (
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetAssignedOrdersQueryIsNotConstructed = errors.New(
		"GetAssignedOrdersQuery must be created via NewGetAssignedOrdersQuery constructor",
	)
)

// GetAssignedOrdersQuery retrieves the orders a driver should care about
// right now: orders assigned to them that are still moving, plus orders with
// a broadcast offer awaiting their response.
type GetAssignedOrdersQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedOrdersQuery creates an assigned-orders query for the driver.
func NewGetAssignedOrdersQuery(driverID kernel.UUID) (GetAssignedOrdersQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetAssignedOrdersQuery{}, err
	}

	return GetAssignedOrdersQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedOrdersQueryIsNotConstructed)
}

// DriverID returns the driver being inspected.
func (q GetAssignedOrdersQuery) DriverID() kernel.UUID {
	return q.driverID
}

// AssignedOrderRow is one order on the driver's work list. OfferPending marks
// rows where the driver has not yet accepted or rejected the broadcast.
type AssignedOrderRow struct {
	OrderID         kernel.UUID
	OrderCode       string
	Status          string
	PickupAddress   string
	PickupPoint     kernel.GeoPoint
	DeliveryAddress string
	DeliveryPoint   kernel.GeoPoint
	Price           decimal.Decimal
	OfferPending    bool
	AssignedAt      time.Time
}
