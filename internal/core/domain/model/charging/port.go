package charging

import (
	"errors"
	"fmt"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
)

var (
	// ErrPortIsNotConstructed is returned when a ChargingPort instance was not
	// created through NewChargingPort or RestoreChargingPort.
	ErrPortIsNotConstructed = errors.New("ChargingPort must be created via NewChargingPort or RestoreChargingPort constructor")
)

// PortStatus is the operational state of a charging port.
type PortStatus int

const (
	PortUnknown PortStatus = iota

	// PortAvailable means the port is free and can start a session.
	PortAvailable

	// PortInUse means a vehicle is plugged in.
	PortInUse

	// PortMaintenance means the port is temporarily out of service.
	PortMaintenance

	// PortOffline means the port is unreachable or decommissioned.
	PortOffline
)

func getPortStatusStrings() map[PortStatus]string {
	return map[PortStatus]string{
		PortUnknown:     "unknown",
		PortAvailable:   "available",
		PortInUse:       "in_use",
		PortMaintenance: "maintenance",
		PortOffline:     "offline",
	}
}

// PortStatusFromString parses a persistence name into a PortStatus.
func PortStatusFromString(s string) (PortStatus, error) {
	for status, name := range getPortStatusStrings() {
		if name == s && status != PortUnknown {
			return status, nil
		}
	}
	return PortUnknown, errs.NewValueIsInvalidError("port status")
}

// String returns the persistence name of the status.
func (s PortStatus) String() string {
	if str, ok := getPortStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ChargingPort is a single plug at a depot. It holds the vehicle occupying it
// while InUse; currentVehicleID is nil in every other status.
type ChargingPort struct {
	id         kernel.UUID
	depotID    kernel.UUID
	portNumber int
	status     PortStatus

	currentVehicleID *kernel.UUID

	isConstructed bool
}

// NewChargingPort creates an Available port. portNumber is the human-facing
// number, unique within the depot.
func NewChargingPort(id, depotID kernel.UUID, portNumber int) (*ChargingPort, error) {
	p := &ChargingPort{
		status:        PortAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDepotID(depotID),
		p.setPortNumber(portNumber),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreChargingPort reconstructs a ChargingPort from persistence.
func RestoreChargingPort(
	id, depotID kernel.UUID,
	portNumber int,
	status PortStatus,
	currentVehicleID *kernel.UUID,
) *ChargingPort {
	return &ChargingPort{
		id:               id,
		depotID:          depotID,
		portNumber:       portNumber,
		status:           status,
		currentVehicleID: currentVehicleID,
		isConstructed:    true,
	}
}

// Validate ensures the ChargingPort was built through a constructor.
func (p *ChargingPort) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPortIsNotConstructed
	}
	return nil
}

// ID returns the port's unique identifier.
func (p *ChargingPort) ID() kernel.UUID {
	return p.id
}

// DepotID returns the owning depot's ID.
func (p *ChargingPort) DepotID() kernel.UUID {
	return p.depotID
}

// PortNumber returns the human-facing port number.
func (p *ChargingPort) PortNumber() int {
	return p.portNumber
}

// Status returns the operational state.
func (p *ChargingPort) Status() PortStatus {
	return p.status
}

// CurrentVehicle returns the occupying vehicle's ID, or nil.
func (p *ChargingPort) CurrentVehicle() *kernel.UUID {
	return p.currentVehicleID
}

// Occupy plugs a vehicle into the port. A port that is not Available fails
// with ResourceUnavailableError naming the port number, so the losing caller
// gets a message like "charging port 3".
func (p *ChargingPort) Occupy(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	if p.status != PortAvailable {
		return errs.NewResourceUnavailableError("charging port", p.portNumber)
	}

	p.status = PortInUse
	p.currentVehicleID = &vehicleID
	return nil
}

// Release frees an InUse port. Releasing a port in any other status fails
// with InvalidStateError.
func (p *ChargingPort) Release() error {
	if p.status != PortInUse {
		return errs.NewInvalidStateError(
			fmt.Sprintf("release charging port %d", p.portNumber), p.status.String())
	}

	p.status = PortAvailable
	p.currentVehicleID = nil
	return nil
}

// EnterMaintenance pulls a free port out of service.
func (p *ChargingPort) EnterMaintenance() error {
	if p.status != PortAvailable {
		return errs.NewInvalidStateError(
			fmt.Sprintf("maintain charging port %d", p.portNumber), p.status.String())
	}

	p.status = PortMaintenance
	return nil
}

// ReturnToService makes a Maintenance or Offline port Available again.
func (p *ChargingPort) ReturnToService() error {
	if p.status != PortMaintenance && p.status != PortOffline {
		return errs.NewInvalidStateError(
			fmt.Sprintf("return charging port %d to service", p.portNumber), p.status.String())
	}

	p.status = PortAvailable
	return nil
}

func (p *ChargingPort) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *ChargingPort) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("depotID", err)
	}
	p.depotID = depotID
	return nil
}

func (p *ChargingPort) setPortNumber(portNumber int) error {
	if portNumber <= 0 {
		return errs.NewValueIsInvalidError("portNumber")
	}
	p.portNumber = portNumber
	return nil
}
