package commands

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrAssignDriverCommandIsNotConstructed = errors.New(
		"AssignDriverCommand must be created via NewAssignDriverCommand constructor",
	)
)

// AssignDriverCommand represents the administrative assignment path: a
// dispatcher hands the order to a specific driver without a broadcast race.
// The vehicle may be named explicitly or resolved from the driver.
type AssignDriverCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	driverID  kernel.UUID
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDriverCommand creates a direct-assignment command. vehicleID is
// optional; when nil the handler resolves the driver's claimable vehicle.
func NewAssignDriverCommand(orderID, driverID kernel.UUID, vehicleID *kernel.UUID) (AssignDriverCommand, error) {
	cmd := AssignDriverCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return AssignDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDriverCommand) Validate() error {
	return c.guard.Validate(ErrAssignDriverCommandIsNotConstructed)
}

// OrderID returns the order being assigned.
func (c AssignDriverCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver receiving the order.
func (c AssignDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the explicitly named vehicle, or nil to resolve from the
// driver.
func (c AssignDriverCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

func (c *AssignDriverCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *AssignDriverCommand) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("vehicleID", err)
	}

	c.vehicleID = vehicleID
	return nil
}
