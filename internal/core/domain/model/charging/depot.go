// Package charging provides domain entities for the charging allocation
// engine: depots, their charging ports, and charging sessions.
//
// Key business rules:
//   - A port serves at most one vehicle at a time; occupying a non-available
//     port fails with a ResourceUnavailableError naming the port number
//   - A session is completed exactly once; ending a completed session is a
//     conflict, so retries cannot double-release the port
//   - Port release and vehicle release happen through the session completion
//     path so readings stay consistent
package charging

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
)

var (
	// ErrDepotIsNotConstructed is returned when a Depot instance was not
	// created through NewDepot or RestoreDepot.
	ErrDepotIsNotConstructed = errors.New("Depot must be created via NewDepot or RestoreDepot constructor")
)

// Depot is a charging site holding a set of ports.
type Depot struct {
	id       kernel.UUID
	name     string
	location kernel.GeoPoint
	active   bool

	isConstructed bool
}

// NewDepot creates an active Depot at the given location.
func NewDepot(id kernel.UUID, name string, location kernel.GeoPoint) (*Depot, error) {
	d := &Depot{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setLocation(location),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDepot reconstructs a Depot from persistence.
func RestoreDepot(id kernel.UUID, name string, location kernel.GeoPoint, active bool) *Depot {
	return &Depot{
		id:            id,
		name:          name,
		location:      location,
		active:        active,
		isConstructed: true,
	}
}

// Validate ensures the Depot was built through a constructor.
func (d *Depot) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDepotIsNotConstructed
	}
	return nil
}

// ID returns the depot's unique identifier.
func (d *Depot) ID() kernel.UUID {
	return d.id
}

// Name returns the depot's display name.
func (d *Depot) Name() string {
	return d.name
}

// Location returns the depot's coordinates.
func (d *Depot) Location() kernel.GeoPoint {
	return d.location
}

// IsActive reports whether the depot accepts new sessions.
func (d *Depot) IsActive() bool {
	return d.active
}

// Deactivate stops the depot from accepting new sessions. Running sessions
// are unaffected.
func (d *Depot) Deactivate() {
	d.active = false
}

// Activate reopens the depot for new sessions.
func (d *Depot) Activate() {
	d.active = true
}

func (d *Depot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Depot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Depot) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("location", err)
	}
	d.location = location
	return nil
}
