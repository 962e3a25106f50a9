package order

import (
	"greenfleet/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
// It implements a state machine with a fixed edge set so orders can only move
// along the business workflow:
//
//	pending ──┬──> confirmed ──> pickup_ready ──┐
//	          │         │                       │
//	          │         └──────────┬────────────┘
//	          └────────────────────┴──> in_transit ──> delivered
//
//	any non-terminal state ──> cancelled
//
// delivered and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order waits for driver assignment.
	Pending

	// Confirmed means a driver was assigned administratively and has not
	// started the delivery yet.
	Confirmed

	// PickupReady means the parcel is staged and waiting for the driver
	// at the pickup point.
	PickupReady

	// InTransit means the assigned driver picked the parcel up and is
	// on the way to the delivery point.
	InTransit

	// Delivered is the terminal success state.
	Delivered

	// Cancelled is the terminal abort state.
	Cancelled
)

// getStatusStrings returns the wire/persistence names for every Status value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Pending:     "pending",
		Confirmed:   "confirmed",
		PickupReady: "pickup_ready",
		InTransit:   "in_transit",
		Delivered:   "delivered",
		Cancelled:   "cancelled",
	}
}

// getAllowedTransitions returns the full edge set of the order state machine.
func getAllowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:     {Confirmed, InTransit, Cancelled},
		Confirmed:   {PickupReady, InTransit, Cancelled},
		PickupReady: {InTransit, Cancelled},
		InTransit:   {Delivered, Cancelled},
		Delivered:   {},
		Cancelled:   {},
	}
}

// StatusFromString parses a persistence/wire name back into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		errs.NewValueIsInvalidError(s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getAllowedTransitions()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the wire name of the status ("pending", "in_transit", ...).
// It is safe to call on any value and implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// TransitionTo validates the edge s -> next and returns the new status.
// Disallowed edges fail with InvalidTransitionError, so a delivered order can
// never be pushed back to in_transit.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	for _, allowed := range getAllowedTransitions()[s] {
		if next == allowed {
			return next, nil
		}
	}

	return Unknown, errs.NewInvalidTransitionError(s.String(), next.String())
}
