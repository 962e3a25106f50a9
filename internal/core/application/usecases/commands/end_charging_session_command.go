package commands

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/guard"
)

var (
	ErrEndChargingSessionCommandIsNotConstructed = errors.New(
		"EndChargingSessionCommand must be created via NewEndChargingSessionCommand constructor",
	)
)

// EndChargingSessionCommand represents unplugging a vehicle: the session
// completes with optional end readings and the port frees up.
type EndChargingSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	endBatteryPercent *int
	energyKWh         *float64

	guard guard.ConstructorGuard
}

// NewEndChargingSessionCommand creates a session-end command. Both readings
// are optional; when present the battery must be a valid percentage and the
// energy non-negative.
func NewEndChargingSessionCommand(
	sessionID kernel.UUID,
	endBatteryPercent *int,
	energyKWh *float64,
) (EndChargingSessionCommand, error) {
	cmd := EndChargingSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setEndBatteryPercent(endBatteryPercent),
		cmd.setEnergyKWh(energyKWh),
	); err != nil {
		return EndChargingSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EndChargingSessionCommand) Validate() error {
	return c.guard.Validate(ErrEndChargingSessionCommandIsNotConstructed)
}

// SessionID returns the session being ended.
func (c EndChargingSessionCommand) SessionID() kernel.UUID {
	return c.sessionID
}

// EndBatteryPercent returns the reported end battery percentage, or nil.
func (c EndChargingSessionCommand) EndBatteryPercent() *int {
	return c.endBatteryPercent
}

// EnergyKWh returns the reported energy meter reading, or nil.
func (c EndChargingSessionCommand) EnergyKWh() *float64 {
	return c.energyKWh
}

func (c *EndChargingSessionCommand) setSessionID(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	c.sessionID = sessionID
	return nil
}

func (c *EndChargingSessionCommand) setEndBatteryPercent(endBatteryPercent *int) error {
	if endBatteryPercent == nil {
		return nil
	}
	if _, err := kernel.NewBatteryLevel(*endBatteryPercent); err != nil {
		return err
	}

	c.endBatteryPercent = endBatteryPercent
	return nil
}

func (c *EndChargingSessionCommand) setEnergyKWh(energyKWh *float64) error {
	if energyKWh == nil {
		return nil
	}
	if *energyKWh < 0 {
		return errs.NewValueIsInvalidError("energyKWh")
	}

	c.energyKWh = energyKWh
	return nil
}
