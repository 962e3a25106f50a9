package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// ReasonOrderTaken is the human-readable reason handed to a caller that lost
// the race for an order. It is also recorded on the cascade-rejected sibling
// assignments.
const ReasonOrderTaken = "order already taken"

// Order is the aggregate root of the dispatch engine. It owns the delivery
// lifecycle from creation through driver assignment to completion and keeps
// the following invariants:
//   - driverID and vehicleID are set together or not at all
//   - status transitions follow the edge set defined on Status
//   - actual pickup/delivery times are stamped by transitions, never supplied
//   - only one driver ever wins the order (ClaimForDelivery loses with
//     a ConflictError once a driver is set)
type Order struct {
	id        kernel.UUID
	orderCode string
	status    Status

	// driverID and vehicleID are nil until a driver wins or is assigned
	// the order. They are always set as a pair.
	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	pickupAddress   string
	pickupPoint     kernel.GeoPoint
	deliveryAddress string
	deliveryPoint   kernel.GeoPoint

	// currentPoint is the last reported position of the parcel, if any.
	currentPoint *kernel.GeoPoint

	price decimal.Decimal

	estimatedPickupTime   *time.Time
	estimatedDeliveryTime *time.Time
	actualPickupTime      *time.Time
	actualDeliveryTime    *time.Time

	// proof-of-delivery, recorded by the driver's delivery check-in
	proofPhotoURL  string
	proofSignature string
	receiverName   string

	isConstructed bool
}

// NewOrderCode derives a human-presentable order code from the order id and
// the creation time, e.g. "GF-20260830174501-1A2B3C". Codes are unique as long
// as ids are.
func NewOrderCode(id kernel.UUID, createdAt time.Time) string {
	suffix := strings.ToUpper(id.String()[:6])
	return fmt.Sprintf("GF-%s-%s", createdAt.UTC().Format("20060102150405"), suffix)
}

// NewOrder creates a new Order in Pending status with no driver assigned.
// This is the only way to create a fresh order, ensuring all business
// invariants hold from the start.
//
// The price is stamped once at creation and never recomputed.
func NewOrder(
	id kernel.UUID,
	orderCode string,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint kernel.GeoPoint,
	price decimal.Decimal,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		price:         price,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderCode(orderCode),
		order.setPickup(pickupAddress, pickupPoint),
		order.setDelivery(deliveryAddress, deliveryPoint),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without running the
// creation-time rules. The repository layer is the only intended caller.
func RestoreOrder(
	id kernel.UUID,
	orderCode string,
	status Status,
	driverID, vehicleID *kernel.UUID,
	pickupAddress string,
	pickupPoint kernel.GeoPoint,
	deliveryAddress string,
	deliveryPoint kernel.GeoPoint,
	currentPoint *kernel.GeoPoint,
	price decimal.Decimal,
	estimatedPickupTime, estimatedDeliveryTime *time.Time,
	actualPickupTime, actualDeliveryTime *time.Time,
	proofPhotoURL, proofSignature, receiverName string,
) *Order {
	return &Order{
		id:                    id,
		orderCode:             orderCode,
		status:                status,
		driverID:              driverID,
		vehicleID:             vehicleID,
		pickupAddress:         pickupAddress,
		pickupPoint:           pickupPoint,
		deliveryAddress:       deliveryAddress,
		deliveryPoint:         deliveryPoint,
		currentPoint:          currentPoint,
		price:                 price,
		estimatedPickupTime:   estimatedPickupTime,
		estimatedDeliveryTime: estimatedDeliveryTime,
		actualPickupTime:      actualPickupTime,
		actualDeliveryTime:    actualDeliveryTime,
		proofPhotoURL:         proofPhotoURL,
		proofSignature:        proofSignature,
		receiverName:          receiverName,
		isConstructed:         true,
	}
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderCode returns the human-presentable code ("GF-...").
func (o *Order) OrderCode() string {
	return o.orderCode
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the winning driver's ID, or nil while unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Vehicle returns the ID of the vehicle carrying the order, or nil.
func (o *Order) Vehicle() *kernel.UUID {
	return o.vehicleID
}

// PickupAddress returns the human-readable pickup address.
func (o *Order) PickupAddress() string {
	return o.pickupAddress
}

// PickupPoint returns the pickup coordinates.
func (o *Order) PickupPoint() kernel.GeoPoint {
	return o.pickupPoint
}

// DeliveryAddress returns the human-readable delivery address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// DeliveryPoint returns the delivery coordinates.
func (o *Order) DeliveryPoint() kernel.GeoPoint {
	return o.deliveryPoint
}

// CurrentPoint returns the last reported parcel position, or nil.
func (o *Order) CurrentPoint() *kernel.GeoPoint {
	return o.currentPoint
}

// Price returns the price stamped at creation.
func (o *Order) Price() decimal.Decimal {
	return o.price
}

// EstimatedPickupTime returns the promised pickup time, if set.
func (o *Order) EstimatedPickupTime() *time.Time {
	return o.estimatedPickupTime
}

// EstimatedDeliveryTime returns the promised delivery time, if set.
func (o *Order) EstimatedDeliveryTime() *time.Time {
	return o.estimatedDeliveryTime
}

// ActualPickupTime returns when the parcel actually went in transit, if it did.
func (o *Order) ActualPickupTime() *time.Time {
	return o.actualPickupTime
}

// ActualDeliveryTime returns when the parcel was actually delivered, if it was.
func (o *Order) ActualDeliveryTime() *time.Time {
	return o.actualDeliveryTime
}

// ProofPhotoURL returns the delivery photo URL recorded at check-in.
func (o *Order) ProofPhotoURL() string {
	return o.proofPhotoURL
}

// ProofSignature returns the receiver's signature recorded at check-in.
func (o *Order) ProofSignature() string {
	return o.proofSignature
}

// ReceiverName returns the receiver's name recorded at check-in.
func (o *Order) ReceiverName() string {
	return o.receiverName
}

// ScheduleEstimates records the promised pickup and delivery times. Either
// may be nil.
func (o *Order) ScheduleEstimates(pickup, delivery *time.Time) {
	o.estimatedPickupTime = pickup
	o.estimatedDeliveryTime = delivery
}

// BelongsTo reports whether the order is assigned to the given driver.
func (o *Order) BelongsTo(driverID kernel.UUID) bool {
	return o.driverID != nil && o.driverID.IsEqual(driverID)
}

// IsClaimable reports whether a broadcast responder can still win the order:
// it must be Pending with no driver set yet.
func (o *Order) IsClaimable() bool {
	return o.status == Pending && o.driverID == nil
}

// ClaimForDelivery is the winning path of the broadcast response race. The
// caller becomes the order's driver, the order goes straight to InTransit and
// the actual pickup time is stamped.
//
// A caller racing against an earlier winner loses with
// ConflictError(ReasonOrderTaken). The handler turns that loss into a
// cascade rejection of the caller's own assignment.
func (o *Order) ClaimForDelivery(driverID, vehicleID kernel.UUID, now time.Time) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	if !o.IsClaimable() {
		return errs.NewConflictError(ReasonOrderTaken)
	}

	newStatus, err := o.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driverID = &driverID
	o.vehicleID = &vehicleID
	o.actualPickupTime = &now
	return nil
}

// AssignDriver is the administrative assignment path: the order is handed to
// a specific driver and moves to Confirmed without starting the delivery.
// Reassignment of a Confirmed order to another driver is allowed.
func (o *Order) AssignDriver(driverID, vehicleID kernel.UUID) error {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return err
	}

	if o.status != Pending && o.status != Confirmed {
		return errs.NewInvalidStateError("assign driver", o.status.String())
	}

	if o.status == Pending {
		newStatus, err := o.status.TransitionTo(Confirmed)
		if err != nil {
			return err
		}
		o.status = newStatus
	}

	o.driverID = &driverID
	o.vehicleID = &vehicleID
	return nil
}

// TransitionTo moves the order along the lifecycle edge set, stamping the
// actual pickup time on the first move into InTransit and the actual delivery
// time on the move into Delivered.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus

	switch newStatus {
	case InTransit:
		if o.actualPickupTime == nil {
			o.actualPickupTime = &now
		}
	case Delivered:
		if o.actualDeliveryTime == nil {
			o.actualDeliveryTime = &now
		}
	}

	return nil
}

// UpdatePosition records the parcel's last reported position.
func (o *Order) UpdatePosition(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	o.currentPoint = &point
	return nil
}

// RecordProof stores proof-of-delivery details from the driver's check-in.
// Empty fields leave the previously recorded value untouched.
func (o *Order) RecordProof(photoURL, signature, receiverName string) {
	if photoURL != "" {
		o.proofPhotoURL = photoURL
	}
	if signature != "" {
		o.proofSignature = signature
	}
	if receiverName != "" {
		o.receiverName = receiverName
	}
}

// CompleteDelivery finishes the order from the driver's delivery check-in.
// The order must be InTransit.
func (o *Order) CompleteDelivery(now time.Time) error {
	if o.status != InTransit {
		return errs.NewInvalidStateError("complete delivery", o.status.String())
	}

	return o.TransitionTo(Delivered, now)
}

// Cancel aborts the order. Terminal orders cannot be cancelled; cancelling
// a cancelled order is reported as InvalidStateError rather than silently
// succeeding.
func (o *Order) Cancel() error {
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError("cancel", o.status.String())
	}

	newStatus, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderCode(orderCode string) error {
	if orderCode == "" {
		return errs.NewValueIsRequiredError("orderCode")
	}
	o.orderCode = orderCode
	return nil
}

func (o *Order) setPickup(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if err := point.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupPoint", err)
	}
	o.pickupAddress = address
	o.pickupPoint = point
	return nil
}

func (o *Order) setDelivery(address string, point kernel.GeoPoint) error {
	if address == "" {
		return errs.NewValueIsRequiredError("deliveryAddress")
	}
	if err := point.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPoint", err)
	}
	o.deliveryAddress = address
	o.deliveryPoint = point
	return nil
}
