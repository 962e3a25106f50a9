package order

import (
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
)

var (
	// ErrAssignmentIsNotConstructed is returned when an Assignment was not
	// created through NewAssignment or RestoreAssignment.
	ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment or RestoreAssignment constructor")
)

// AssignmentStatus is the response state of a broadcast offer. Unlike the
// order lifecycle it has a single decision point: a Pending assignment is
// responded to exactly once.
type AssignmentStatus int

const (
	AssignmentUnknown AssignmentStatus = iota

	// AssignmentPending means the driver has not responded yet.
	AssignmentPending

	// AssignmentAccepted means the driver won the order.
	AssignmentAccepted

	// AssignmentRejected means the driver declined, lost the race, or the
	// offer was revoked by a re-broadcast.
	AssignmentRejected
)

func getAssignmentStatusStrings() map[AssignmentStatus]string {
	return map[AssignmentStatus]string{
		AssignmentUnknown:  "unknown",
		AssignmentPending:  "pending",
		AssignmentAccepted: "accepted",
		AssignmentRejected: "rejected",
	}
}

// AssignmentStatusFromString parses a persistence name into an AssignmentStatus.
func AssignmentStatusFromString(s string) (AssignmentStatus, error) {
	for status, name := range getAssignmentStatusStrings() {
		if name == s && status != AssignmentUnknown {
			return status, nil
		}
	}
	return AssignmentUnknown, errs.NewValueIsInvalidError("assignment status")
}

// String returns the persistence name of the status.
func (s AssignmentStatus) String() string {
	if str, ok := getAssignmentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Assignment is a broadcast offer of one order to one driver. A broadcast
// creates one Pending assignment per notified driver; exactly one of them can
// end up Accepted, and acceptance cascades rejection to its siblings.
//
// Invariants:
//   - respondedAt is nil exactly while status is Pending
//   - a responded assignment never changes its response
//   - rejectReason is only meaningful on Rejected assignments
type Assignment struct {
	id       kernel.UUID
	orderID  kernel.UUID
	driverID kernel.UUID
	status   AssignmentStatus

	assignedAt   time.Time
	respondedAt  *time.Time
	rejectReason string

	isConstructed bool
}

// NewAssignment creates a Pending assignment offering the order to the driver.
func NewAssignment(id, orderID, driverID kernel.UUID, assignedAt time.Time) (*Assignment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Assignment{
		id:            id,
		orderID:       orderID,
		driverID:      driverID,
		status:        AssignmentPending,
		assignedAt:    assignedAt,
		isConstructed: true,
	}, nil
}

// RestoreAssignment reconstructs an Assignment from persistence.
func RestoreAssignment(
	id, orderID, driverID kernel.UUID,
	status AssignmentStatus,
	assignedAt time.Time,
	respondedAt *time.Time,
	rejectReason string,
) *Assignment {
	return &Assignment{
		id:            id,
		orderID:       orderID,
		driverID:      driverID,
		status:        status,
		assignedAt:    assignedAt,
		respondedAt:   respondedAt,
		rejectReason:  rejectReason,
		isConstructed: true,
	}
}

// Validate ensures the Assignment was built through a constructor.
func (a *Assignment) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAssignmentIsNotConstructed
	}
	return nil
}

// ID returns the assignment's unique identifier.
func (a *Assignment) ID() kernel.UUID {
	return a.id
}

// OrderID returns the offered order's ID.
func (a *Assignment) OrderID() kernel.UUID {
	return a.orderID
}

// DriverID returns the offered driver's ID.
func (a *Assignment) DriverID() kernel.UUID {
	return a.driverID
}

// Status returns the response state.
func (a *Assignment) Status() AssignmentStatus {
	return a.status
}

// AssignedAt returns when the offer was made.
func (a *Assignment) AssignedAt() time.Time {
	return a.assignedAt
}

// RespondedAt returns when the driver responded, or nil while Pending.
func (a *Assignment) RespondedAt() *time.Time {
	return a.respondedAt
}

// RejectReason returns the recorded rejection reason, if any.
func (a *Assignment) RejectReason() string {
	return a.rejectReason
}

// IsPending reports whether the offer still awaits a response.
func (a *Assignment) IsPending() bool {
	return a.status == AssignmentPending
}

// Accept records the driver's acceptance. Responding twice fails with
// ConflictError.
func (a *Assignment) Accept(now time.Time) error {
	if !a.IsPending() {
		return errs.NewConflictError("assignment already responded to")
	}

	a.status = AssignmentAccepted
	a.respondedAt = &now
	return nil
}

// Reject records the driver's rejection with an optional reason. Cascade
// rejections use ReasonOrderTaken. Responding twice fails with ConflictError.
func (a *Assignment) Reject(now time.Time, reason string) error {
	if !a.IsPending() {
		return errs.NewConflictError("assignment already responded to")
	}

	a.status = AssignmentRejected
	a.respondedAt = &now
	a.rejectReason = reason
	return nil
}
