// Package sessionrepo persists charging session aggregates.
package sessionrepo

import (
	"time"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting charging
// sessions. PortNumber is denormalized from the port row.
type SessionDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	VehicleID  uuid.UUID `gorm:"type:uuid;index"`
	DriverID   uuid.UUID `gorm:"type:uuid;index"`
	DepotID    uuid.UUID `gorm:"type:uuid;index"`
	PortID     uuid.UUID `gorm:"type:uuid"`
	PortNumber int
	Status     string `gorm:"index"`

	StartTime         time.Time
	EndTime           *time.Time
	StartBattery      int
	EndBattery        *int
	EnergyConsumedKwh *float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "charging_sessions".
func (SessionDTO) TableName() string {
	return "charging_sessions"
}

func fromDomain(s *charging.ChargingSession) SessionDTO {
	dto := SessionDTO{
		ID:                s.ID().Bytes(),
		VehicleID:         s.VehicleID().Bytes(),
		DriverID:          s.DriverID().Bytes(),
		DepotID:           s.DepotID().Bytes(),
		PortID:            s.PortID().Bytes(),
		PortNumber:        s.PortNumber(),
		Status:            s.Status().String(),
		StartTime:         s.StartTime(),
		EndTime:           s.EndTime(),
		StartBattery:      s.StartBattery().Percent(),
		EnergyConsumedKwh: s.EnergyConsumedKWh(),
	}

	if endBattery := s.EndBattery(); endBattery != nil {
		percent := endBattery.Percent()
		dto.EndBattery = &percent
	}

	return dto
}

func toDomain(dto SessionDTO) (*charging.ChargingSession, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	depotID, err := kernel.UUIDFromBytes(dto.DepotID[:])
	if err != nil {
		return nil, err
	}

	portID, err := kernel.UUIDFromBytes(dto.PortID[:])
	if err != nil {
		return nil, err
	}

	status, err := charging.SessionStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	startBattery, err := kernel.NewBatteryLevel(dto.StartBattery)
	if err != nil {
		return nil, err
	}

	var endBattery *kernel.BatteryLevel
	if dto.EndBattery != nil {
		level, levelErr := kernel.NewBatteryLevel(*dto.EndBattery)
		if levelErr != nil {
			return nil, levelErr
		}
		endBattery = &level
	}

	return charging.RestoreChargingSession(
		id, vehicleID, driverID, depotID, portID,
		dto.PortNumber,
		status,
		dto.StartTime,
		dto.EndTime,
		startBattery,
		endBattery,
		dto.EnergyConsumedKwh,
	), nil
}
