package commands

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrStartChargingSessionCommandIsNotConstructed = errors.New(
		"StartChargingSessionCommand must be created via NewStartChargingSessionCommand constructor",
	)
)

// StartChargingSessionCommand represents a driver plugging their vehicle into
// a depot port. The session ID is generated by the caller so the created
// session can be addressed immediately.
type StartChargingSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID
	driverID  kernel.UUID
	depotID   kernel.UUID
	portID    kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartChargingSessionCommand creates a session-start command.
func NewStartChargingSessionCommand(
	sessionID, driverID, depotID, portID kernel.UUID,
) (StartChargingSessionCommand, error) {
	cmd := StartChargingSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setDriverID(driverID),
		cmd.setDepotID(depotID),
		cmd.setPortID(portID),
	); err != nil {
		return StartChargingSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartChargingSessionCommand) Validate() error {
	return c.guard.Validate(ErrStartChargingSessionCommandIsNotConstructed)
}

// SessionID returns the identifier for the new session.
func (c StartChargingSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// DriverID returns the driver starting the session.
func (c StartChargingSessionCommand) DriverID() kernel.UUID {
	return c.driverID
}

// DepotID returns the depot hosting the session.
func (c StartChargingSessionCommand) DepotID() kernel.UUID {
	return c.depotID
}

// PortID returns the requested charging port.
func (c StartChargingSessionCommand) PortID() kernel.UUID {
	return c.portID
}

func (c *StartChargingSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *StartChargingSessionCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *StartChargingSessionCommand) setDepotID(depotID kernel.UUID) error {
	if err := depotID.Validate(); err != nil {
		return err
	}

	c.depotID = depotID
	return nil
}

func (c *StartChargingSessionCommand) setPortID(portID kernel.UUID) error {
	if err := portID.Validate(); err != nil {
		return err
	}

	c.portID = portID
	return nil
}
