// Package depotrepo persists depots and their charging ports.
package depotrepo

import (
	"time"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DepotDTO represents the database structure for persisting depots.
type DepotDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Lat    float64
	Lng    float64
	Active bool `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "charging_depots".
func (DepotDTO) TableName() string {
	return "charging_depots"
}

// PortDTO represents the database structure for persisting charging ports.
// PortNumber is unique within a depot.
type PortDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	DepotID    uuid.UUID `gorm:"type:uuid;index:idx_depot_port,unique"`
	PortNumber int       `gorm:"index:idx_depot_port,unique"`
	Status     string    `gorm:"index"`

	CurrentVehicleID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "charging_ports".
func (PortDTO) TableName() string {
	return "charging_ports"
}

func depotFromDomain(d *charging.Depot) DepotDTO {
	return DepotDTO{
		ID:     d.ID().Bytes(),
		Name:   d.Name(),
		Lat:    d.Location().Lat(),
		Lng:    d.Location().Lng(),
		Active: d.IsActive(),
	}
}

func depotToDomain(dto DepotDTO) (*charging.Depot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return nil, err
	}

	return charging.RestoreDepot(id, dto.Name, location, dto.Active), nil
}

func portFromDomain(p *charging.ChargingPort) PortDTO {
	dto := PortDTO{
		ID:         p.ID().Bytes(),
		DepotID:    p.DepotID().Bytes(),
		PortNumber: p.PortNumber(),
		Status:     p.Status().String(),
	}

	if vehicleID := p.CurrentVehicle(); vehicleID != nil {
		raw := vehicleID.Bytes()
		dto.CurrentVehicleID = &raw
	}

	return dto
}

func portToDomain(dto PortDTO) (*charging.ChargingPort, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	depotID, err := kernel.UUIDFromBytes(dto.DepotID[:])
	if err != nil {
		return nil, err
	}

	status, err := charging.PortStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var currentVehicleID *kernel.UUID
	if dto.CurrentVehicleID != nil {
		vehicleID, vehicleErr := kernel.UUIDFromBytes((*dto.CurrentVehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		currentVehicleID = &vehicleID
	}

	return charging.RestoreChargingPort(id, depotID, dto.PortNumber, status, currentVehicleID), nil
}
