package commands

import (
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new delivery order.
// It carries the pickup and delivery sides plus optional schedule estimates;
// the order code and the price are derived by the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	pickupAddress   string
	pickupPoint     kernel.GeoPoint
	deliveryAddress string
	deliveryPoint   kernel.GeoPoint

	estimatedPickupTime   *time.Time
	estimatedDeliveryTime *time.Time

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Addresses must be non-empty and both points must be constructed GeoPoints.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint kernel.GeoPoint,
	estimatedPickupTime *time.Time,
	estimatedDeliveryTime *time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		estimatedPickupTime:   estimatedPickupTime,
		estimatedDeliveryTime: estimatedDeliveryTime,
		guard:                 guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPickup(pickupAddress, pickupPoint),
		cmd.setDelivery(deliveryAddress, deliveryPoint),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PickupAddress returns the human-readable pickup address.
func (c CreateOrderCommand) PickupAddress() string {
	return c.pickupAddress
}

// PickupPoint returns the pickup coordinates.
func (c CreateOrderCommand) PickupPoint() kernel.GeoPoint {
	return c.pickupPoint
}

// DeliveryAddress returns the human-readable delivery address.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// DeliveryPoint returns the delivery coordinates.
func (c CreateOrderCommand) DeliveryPoint() kernel.GeoPoint {
	return c.deliveryPoint
}

// EstimatedPickupTime returns the promised pickup time, if any.
func (c CreateOrderCommand) EstimatedPickupTime() *time.Time {
	return c.estimatedPickupTime
}

// EstimatedDeliveryTime returns the promised delivery time, if any.
func (c CreateOrderCommand) EstimatedDeliveryTime() *time.Time {
	return c.estimatedDeliveryTime
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setPickup(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if err := point.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupPoint", err)
	}

	c.pickupAddress = address
	c.pickupPoint = point
	return nil
}

func (c *CreateOrderCommand) setDelivery(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := point.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPoint", err)
	}

	c.deliveryAddress = address
	c.deliveryPoint = point
	return nil
}
