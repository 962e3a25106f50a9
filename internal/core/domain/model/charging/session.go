package charging

import (
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
)

var (
	// ErrSessionIsNotConstructed is returned when a ChargingSession instance
	// was not created through NewChargingSession or RestoreChargingSession.
	ErrSessionIsNotConstructed = errors.New("ChargingSession must be created via NewChargingSession or RestoreChargingSession constructor")
)

// SessionStatus is the state of a charging session.
type SessionStatus int

const (
	SessionUnknown SessionStatus = iota

	// SessionInProgress means the vehicle is plugged in and charging.
	SessionInProgress

	// SessionCompleted means the session ended and its readings are final.
	SessionCompleted
)

func getSessionStatusStrings() map[SessionStatus]string {
	return map[SessionStatus]string{
		SessionUnknown:    "unknown",
		SessionInProgress: "in_progress",
		SessionCompleted:  "completed",
	}
}

// SessionStatusFromString parses a persistence name into a SessionStatus.
func SessionStatusFromString(s string) (SessionStatus, error) {
	for status, name := range getSessionStatusStrings() {
		if name == s && status != SessionUnknown {
			return status, nil
		}
	}
	return SessionUnknown, errs.NewValueIsInvalidError("session status")
}

// String returns the persistence name of the status.
func (s SessionStatus) String() string {
	if str, ok := getSessionStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ChargingSession records one vehicle occupying one port from start to end.
// The port number is denormalized so session listings don't need a port join.
//
// A session completes exactly once: Complete on a completed session fails
// with ConflictError, which is what makes EndChargingSession safe to retry
// without double-releasing the port.
type ChargingSession struct {
	id         kernel.UUID
	vehicleID  kernel.UUID
	driverID   kernel.UUID
	depotID    kernel.UUID
	portID     kernel.UUID
	portNumber int
	status     SessionStatus

	startTime    time.Time
	endTime      *time.Time
	startBattery kernel.BatteryLevel
	endBattery   *kernel.BatteryLevel

	// energyConsumedKWh is the meter reading reported at session end, if any.
	energyConsumedKWh *float64

	isConstructed bool
}

// NewChargingSession creates an InProgress session for the vehicle on the
// given port.
func NewChargingSession(
	id, vehicleID, driverID, depotID, portID kernel.UUID,
	portNumber int,
	startTime time.Time,
	startBattery kernel.BatteryLevel,
) (*ChargingSession, error) {
	if err := errors.Join(
		id.Validate(),
		vehicleID.Validate(),
		driverID.Validate(),
		depotID.Validate(),
		portID.Validate(),
	); err != nil {
		return nil, err
	}
	if portNumber <= 0 {
		return nil, errs.NewValueIsInvalidError("portNumber")
	}

	return &ChargingSession{
		id:            id,
		vehicleID:     vehicleID,
		driverID:      driverID,
		depotID:       depotID,
		portID:        portID,
		portNumber:    portNumber,
		status:        SessionInProgress,
		startTime:     startTime,
		startBattery:  startBattery,
		isConstructed: true,
	}, nil
}

// RestoreChargingSession reconstructs a ChargingSession from persistence.
func RestoreChargingSession(
	id, vehicleID, driverID, depotID, portID kernel.UUID,
	portNumber int,
	status SessionStatus,
	startTime time.Time,
	endTime *time.Time,
	startBattery kernel.BatteryLevel,
	endBattery *kernel.BatteryLevel,
	energyConsumedKWh *float64,
) *ChargingSession {
	return &ChargingSession{
		id:                id,
		vehicleID:         vehicleID,
		driverID:          driverID,
		depotID:           depotID,
		portID:            portID,
		portNumber:        portNumber,
		status:            status,
		startTime:         startTime,
		endTime:           endTime,
		startBattery:      startBattery,
		endBattery:        endBattery,
		energyConsumedKWh: energyConsumedKWh,
		isConstructed:     true,
	}
}

// Validate ensures the ChargingSession was built through a constructor.
func (s *ChargingSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *ChargingSession) ID() kernel.UUID {
	return s.id
}

// VehicleID returns the charging vehicle's ID.
func (s *ChargingSession) VehicleID() kernel.UUID {
	return s.vehicleID
}

// DriverID returns the ID of the driver who started the session.
func (s *ChargingSession) DriverID() kernel.UUID {
	return s.driverID
}

// DepotID returns the depot hosting the session.
func (s *ChargingSession) DepotID() kernel.UUID {
	return s.depotID
}

// PortID returns the occupied port's ID.
func (s *ChargingSession) PortID() kernel.UUID {
	return s.portID
}

// PortNumber returns the denormalized human-facing port number.
func (s *ChargingSession) PortNumber() int {
	return s.portNumber
}

// Status returns the session state.
func (s *ChargingSession) Status() SessionStatus {
	return s.status
}

// StartTime returns when the session started.
func (s *ChargingSession) StartTime() time.Time {
	return s.startTime
}

// EndTime returns when the session ended, or nil while InProgress.
func (s *ChargingSession) EndTime() *time.Time {
	return s.endTime
}

// StartBattery returns the battery reading at session start.
func (s *ChargingSession) StartBattery() kernel.BatteryLevel {
	return s.startBattery
}

// EndBattery returns the battery reading at session end, if reported.
func (s *ChargingSession) EndBattery() *kernel.BatteryLevel {
	return s.endBattery
}

// EnergyConsumedKWh returns the reported meter reading, if any.
func (s *ChargingSession) EnergyConsumedKWh() *float64 {
	return s.energyConsumedKWh
}

// IsInProgress reports whether the session is still running.
func (s *ChargingSession) IsInProgress() bool {
	return s.status == SessionInProgress
}

// Complete ends the session with the optional end readings. Completing an
// already completed session fails with ConflictError and leaves the recorded
// readings untouched.
func (s *ChargingSession) Complete(endTime time.Time, endBattery *kernel.BatteryLevel, energyKWh *float64) error {
	if !s.IsInProgress() {
		return errs.NewConflictError("charging session already completed")
	}
	if endBattery != nil && endBattery.IsLowerThan(s.startBattery) {
		return errs.NewValueIsInvalidError("endBattery")
	}

	s.status = SessionCompleted
	s.endTime = &endTime
	s.endBattery = endBattery
	s.energyConsumedKWh = energyKWh
	return nil
}
