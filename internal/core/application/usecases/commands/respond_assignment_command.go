package commands

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrRespondAssignmentCommandIsNotConstructed = errors.New(
		"RespondAssignmentCommand must be created via NewRespondAssignmentCommand constructor",
	)
)

// RespondAssignmentCommand represents a driver's answer to a broadcast offer:
// accept and take the order, or reject with an optional reason.
type RespondAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	driverID     kernel.UUID
	accept       bool
	rejectReason string

	guard guard.ConstructorGuard
}

// NewRespondAssignmentCommand creates a command carrying a driver's response.
// rejectReason is only meaningful when accept is false and may be empty.
func NewRespondAssignmentCommand(
	orderID, driverID kernel.UUID,
	accept bool,
	rejectReason string,
) (RespondAssignmentCommand, error) {
	cmd := RespondAssignmentCommand{
		accept:       accept,
		rejectReason: rejectReason,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return RespondAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRespondAssignmentCommandIsNotConstructed)
}

// OrderID returns the order the response targets.
func (c RespondAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the responding driver.
func (c RespondAssignmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Accept reports whether the driver takes the order.
func (c RespondAssignmentCommand) Accept() bool {
	return c.accept
}

// RejectReason returns the driver's stated reason for rejecting.
func (c RespondAssignmentCommand) RejectReason() string {
	return c.rejectReason
}

func (c *RespondAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RespondAssignmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}
