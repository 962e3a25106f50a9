// Package vehiclerepo persists vehicle aggregates.
package vehiclerepo

import (
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle
// aggregates. The engagement pair (kind + ref) is stored flat; kind is the
// empty string while the vehicle is idle.
type VehicleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlateNumber    string    `gorm:"uniqueIndex"`
	Status         string    `gorm:"index"`
	BatteryPercent int

	AssignedDriverID *uuid.UUID `gorm:"type:uuid;index"`

	EngagementKind string
	EngagementRef  *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "vehicles".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(v *vehicle.Vehicle) VehicleDTO {
	dto := VehicleDTO{
		ID:             v.ID().Bytes(),
		PlateNumber:    v.PlateNumber(),
		Status:         v.Status().String(),
		BatteryPercent: v.Battery().Percent(),
		EngagementKind: v.EngagementKind().String(),
	}

	if driverID := v.AssignedDriver(); driverID != nil {
		raw := driverID.Bytes()
		dto.AssignedDriverID = &raw
	}
	if ref := v.EngagementRef(); ref != nil {
		raw := ref.Bytes()
		dto.EngagementRef = &raw
	}

	return dto
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	battery, err := kernel.NewBatteryLevel(dto.BatteryPercent)
	if err != nil {
		return nil, err
	}

	kind, err := vehicle.EngagementKindFromString(dto.EngagementKind)
	if err != nil {
		return nil, err
	}

	var assignedDriverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		driverID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		assignedDriverID = &driverID
	}

	var engagementRef *kernel.UUID
	if dto.EngagementRef != nil {
		ref, refErr := kernel.UUIDFromBytes((*dto.EngagementRef)[:])
		if refErr != nil {
			return nil, refErr
		}
		engagementRef = &ref
	}

	return vehicle.RestoreVehicle(
		id,
		dto.PlateNumber,
		status,
		battery,
		assignedDriverID,
		kind,
		engagementRef,
	), nil
}
