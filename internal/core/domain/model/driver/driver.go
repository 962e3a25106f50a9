package driver

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
)

var (
	// ErrDriverIsNotConstructed is returned when a Driver instance was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")
)

const (
	minRating = 0.0
	maxRating = 5.0
)

// Driver is the aggregate for a delivery driver. It carries the dispatch
// inputs (availability, last known position) and the performance inputs the
// KPI projections read (rating, daily target, lifetime delivered counter).
//
// The delivered counter is incremented on every delivery check-in. KPI queries
// recompute authoritative per-day figures from the orders table; the counter
// is the cheap lifetime total.
type Driver struct {
	id          kernel.UUID
	name        string
	available   bool
	location    *kernel.GeoPoint
	rating      float64
	dailyTarget int

	deliveredCount int

	isConstructed bool
}

// NewDriver creates a Driver that is available for dispatch with no deliveries
// recorded yet. Rating must lie in [0, 5] and dailyTarget must be positive.
func NewDriver(id kernel.UUID, name string, rating float64, dailyTarget int) (*Driver, error) {
	d := &Driver{
		available:     true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setRating(rating),
		d.setDailyTarget(dailyTarget),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistence.
func RestoreDriver(
	id kernel.UUID,
	name string,
	available bool,
	location *kernel.GeoPoint,
	rating float64,
	dailyTarget int,
	deliveredCount int,
) *Driver {
	return &Driver{
		id:             id,
		name:           name,
		available:      available,
		location:       location,
		rating:         rating,
		dailyTarget:    dailyTarget,
		deliveredCount: deliveredCount,
		isConstructed:  true,
	}
}

// Validate ensures the Driver was built through a constructor.
func (d *Driver) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverIsNotConstructed
	}
	return nil
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// Name returns the driver's display name.
func (d *Driver) Name() string {
	return d.name
}

// IsAvailable reports whether the driver can receive broadcast offers.
func (d *Driver) IsAvailable() bool {
	return d.available
}

// Location returns the driver's last known position, or nil.
func (d *Driver) Location() *kernel.GeoPoint {
	return d.location
}

// Rating returns the externally supplied service rating.
func (d *Driver) Rating() float64 {
	return d.rating
}

// DailyTarget returns the number of deliveries the driver is expected to
// complete per day.
func (d *Driver) DailyTarget() int {
	return d.dailyTarget
}

// DeliveredCount returns the lifetime delivered counter.
func (d *Driver) DeliveredCount() int {
	return d.deliveredCount
}

// SetAvailability toggles whether the driver receives broadcast offers.
func (d *Driver) SetAvailability(available bool) {
	d.available = available
}

// UpdateLocation records the driver's last known position.
func (d *Driver) UpdateLocation(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	d.location = &point
	return nil
}

// UpdateRating replaces the externally supplied rating.
func (d *Driver) UpdateRating(rating float64) error {
	return d.setRating(rating)
}

// RecordDelivery bumps the lifetime delivered counter. Called from the
// delivery check-in path.
func (d *Driver) RecordDelivery() {
	d.deliveredCount++
}

// IsWithinRadiusOf reports whether the driver's last known position lies
// within radiusKm of point. Drivers with no known position are never in range.
func (d *Driver) IsWithinRadiusOf(point kernel.GeoPoint, radiusKm float64) bool {
	if d.location == nil {
		return false
	}
	return d.location.DistanceKmTo(point) <= radiusKm
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < minRating || rating > maxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	d.rating = rating
	return nil
}

func (d *Driver) setDailyTarget(dailyTarget int) error {
	if dailyTarget <= 0 {
		return errs.NewValueIsInvalidError("dailyTarget")
	}
	d.dailyTarget = dailyTarget
	return nil
}
