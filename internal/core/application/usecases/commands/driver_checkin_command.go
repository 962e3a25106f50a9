package commands

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrDriverCheckinCommandIsNotConstructed = errors.New(
		"DriverCheckinCommand must be created via NewDriverCheckinCommand constructor",
	)
)

// CheckinKind distinguishes the driver's two check-in moments.
type CheckinKind int

const (
	CheckinUnknown CheckinKind = iota

	// CheckinPickup marks the parcel picked up; the order goes in transit.
	CheckinPickup

	// CheckinDelivery marks the parcel handed over; the order completes and
	// proof-of-delivery is recorded.
	CheckinDelivery
)

// CheckinKindFromString parses a wire name into a CheckinKind.
func CheckinKindFromString(s string) (CheckinKind, error) {
	switch s {
	case "pickup":
		return CheckinPickup, nil
	case "delivery":
		return CheckinDelivery, nil
	default:
		return CheckinUnknown, errs.NewValueIsInvalidError("checkin kind")
	}
}

// String returns the wire name of the kind.
func (k CheckinKind) String() string {
	switch k {
	case CheckinPickup:
		return "pickup"
	case CheckinDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// DriverCheckinCommand represents a driver reporting progress on their own
// order: a pickup check-in or a delivery check-in with proof.
type DriverCheckinCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	driverID kernel.UUID
	kind     CheckinKind

	point        *kernel.GeoPoint
	photoURL     string
	signature    string
	receiverName string

	guard guard.ConstructorGuard
}

// NewDriverCheckinCommand creates a check-in command. The proof fields and
// position are optional; they only carry meaning on delivery check-ins.
func NewDriverCheckinCommand(
	orderID, driverID kernel.UUID,
	kind CheckinKind,
	point *kernel.GeoPoint,
	photoURL, signature, receiverName string,
) (DriverCheckinCommand, error) {
	cmd := DriverCheckinCommand{
		photoURL:     photoURL,
		signature:    signature,
		receiverName: receiverName,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setKind(kind),
		cmd.setPoint(point),
	); err != nil {
		return DriverCheckinCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DriverCheckinCommand) Validate() error {
	return c.guard.Validate(ErrDriverCheckinCommandIsNotConstructed)
}

// OrderID returns the order being checked in on.
func (c DriverCheckinCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the reporting driver.
func (c DriverCheckinCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Kind returns the check-in moment.
func (c DriverCheckinCommand) Kind() CheckinKind {
	return c.kind
}

// Point returns the reported position, or nil.
func (c DriverCheckinCommand) Point() *kernel.GeoPoint {
	return c.point
}

// PhotoURL returns the proof photo URL.
func (c DriverCheckinCommand) PhotoURL() string {
	return c.photoURL
}

// Signature returns the receiver's signature data.
func (c DriverCheckinCommand) Signature() string {
	return c.signature
}

// ReceiverName returns the receiver's name.
func (c DriverCheckinCommand) ReceiverName() string {
	return c.receiverName
}

func (c *DriverCheckinCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *DriverCheckinCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *DriverCheckinCommand) setKind(kind CheckinKind) error {
	if kind != CheckinPickup && kind != CheckinDelivery {
		return errs.NewValueIsInvalidError("checkin kind")
	}

	c.kind = kind
	return nil
}

func (c *DriverCheckinCommand) setPoint(point *kernel.GeoPoint) error {
	if point == nil {
		return nil
	}
	if err := point.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("point", err)
	}

	c.point = point
	return nil
}
