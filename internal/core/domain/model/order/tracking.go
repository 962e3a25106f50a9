package order

import (
	"time"

	"greenfleet/internal/core/domain/model/kernel"
)

// TrackingEntry is one row of an order's append-only history. Entries are
// written after the fact and never mutated, so they carry no guard and no
// transition logic.
type TrackingEntry struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	point     *kernel.GeoPoint
	note      string
	createdAt time.Time
}

// NewTrackingEntry creates a history row for the order at the given status.
// point and note are optional context.
func NewTrackingEntry(
	id, orderID kernel.UUID,
	status Status,
	point *kernel.GeoPoint,
	note string,
	createdAt time.Time,
) (*TrackingEntry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	return &TrackingEntry{
		id:        id,
		orderID:   orderID,
		status:    status,
		point:     point,
		note:      note,
		createdAt: createdAt,
	}, nil
}

// RestoreTrackingEntry reconstructs a history row from persistence.
func RestoreTrackingEntry(
	id, orderID kernel.UUID,
	status Status,
	point *kernel.GeoPoint,
	note string,
	createdAt time.Time,
) *TrackingEntry {
	return &TrackingEntry{
		id:        id,
		orderID:   orderID,
		status:    status,
		point:     point,
		note:      note,
		createdAt: createdAt,
	}
}

// ID returns the entry's unique identifier.
func (t *TrackingEntry) ID() kernel.UUID {
	return t.id
}

// OrderID returns the tracked order's ID.
func (t *TrackingEntry) OrderID() kernel.UUID {
	return t.orderID
}

// Status returns the order status at the time of the entry.
func (t *TrackingEntry) Status() Status {
	return t.status
}

// Point returns the position recorded with the entry, or nil.
func (t *TrackingEntry) Point() *kernel.GeoPoint {
	return t.point
}

// Note returns the free-form note recorded with the entry.
func (t *TrackingEntry) Note() string {
	return t.note
}

// CreatedAt returns when the entry was recorded.
func (t *TrackingEntry) CreatedAt() time.Time {
	return t.createdAt
}
