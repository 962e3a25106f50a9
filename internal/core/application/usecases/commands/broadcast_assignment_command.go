package commands

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrBroadcastAssignmentCommandIsNotConstructed = errors.New(
		"BroadcastAssignmentCommand must be created via NewBroadcastAssignmentCommand constructor",
	)
)

// BroadcastAssignmentCommand represents a request to offer a pending order to
// a set of drivers at once. The first driver to accept wins the order.
type BroadcastAssignmentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	driverIDs []kernel.UUID

	guard guard.ConstructorGuard
}

// NewBroadcastAssignmentCommand creates a command to broadcast an order.
// At least one driver must be named and every ID must be constructed.
func NewBroadcastAssignmentCommand(orderID kernel.UUID, driverIDs []kernel.UUID) (BroadcastAssignmentCommand, error) {
	cmd := BroadcastAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverIDs(driverIDs),
	); err != nil {
		return BroadcastAssignmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BroadcastAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastAssignmentCommandIsNotConstructed)
}

// OrderID returns the order being offered.
func (c BroadcastAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverIDs returns the drivers receiving the offer.
func (c BroadcastAssignmentCommand) DriverIDs() []kernel.UUID {
	return c.driverIDs
}

func (c *BroadcastAssignmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *BroadcastAssignmentCommand) setDriverIDs(driverIDs []kernel.UUID) error {
	if len(driverIDs) == 0 {
		return errs.NewValueIsRequiredError("driverIDs")
	}
	for _, id := range driverIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("driverIDs", err)
		}
	}

	c.driverIDs = driverIDs
	return nil
}
