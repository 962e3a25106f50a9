package services

import (
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"
)

// AssignmentResolver is a domain service that settles a driver's response to
// a broadcast offer. It owns the race semantics: exactly one accept wins, the
// winner's acceptance cascades rejection to every sibling offer, and a late
// accept is auto-rejected so the offer table never holds a dangling Pending
// row for a taken order.
//
// The resolver mutates the aggregates only; persisting them atomically is the
// caller's job.
type AssignmentResolver struct{}

// NewAssignmentResolver creates a new AssignmentResolver instance.
func NewAssignmentResolver() AssignmentResolver {
	return AssignmentResolver{}
}

// Accept settles an accepting response. On the winning path the assignment
// becomes Accepted, the order goes InTransit with the driver and vehicle set,
// and every still-pending sibling is rejected with "order already taken".
//
// If the order was already taken (or otherwise left the claimable state) the
// driver's own assignment is rejected with the same reason and the caller
// gets a ConflictError. The mutated assignment must still be persisted so
// the losing offer is closed out.
func (r AssignmentResolver) Accept(
	o *order.Order,
	assignment *order.Assignment,
	siblings []*order.Assignment,
	vehicleID kernel.UUID,
	now time.Time,
) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := assignment.Validate(); err != nil {
		return err
	}

	if !assignment.OrderID().IsEqual(o.ID()) {
		return errs.NewValueIsInvalidError("assignment does not belong to order")
	}

	if !assignment.IsPending() {
		return errs.NewConflictError("assignment already responded to")
	}

	if !o.IsClaimable() {
		// Lost the race: close out the loser's offer and report the conflict.
		_ = assignment.Reject(now, order.ReasonOrderTaken)
		return errs.NewConflictError(order.ReasonOrderTaken)
	}

	if err := o.ClaimForDelivery(assignment.DriverID(), vehicleID, now); err != nil {
		return err
	}

	if err := assignment.Accept(now); err != nil {
		return err
	}

	for _, sibling := range siblings {
		if sibling.ID().IsEqual(assignment.ID()) || !sibling.IsPending() {
			continue
		}
		_ = sibling.Reject(now, order.ReasonOrderTaken)
	}

	return nil
}

// Reject settles a rejecting response. The order is untouched; only the
// driver's own assignment closes.
func (r AssignmentResolver) Reject(assignment *order.Assignment, now time.Time, reason string) error {
	if err := assignment.Validate(); err != nil {
		return err
	}

	return assignment.Reject(now, reason)
}
