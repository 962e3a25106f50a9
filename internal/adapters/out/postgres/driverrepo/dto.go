// Package driverrepo persists driver aggregates.
package driverrepo

import (
	"time"

	"greenfleet/internal/core/domain/model/driver"
	"greenfleet/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Available bool `gorm:"index"`

	Lat *float64
	Lng *float64

	Rating         float64
	DailyTarget    int
	DeliveredCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "drivers".
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	dto := DriverDTO{
		ID:             d.ID().Bytes(),
		Name:           d.Name(),
		Available:      d.IsAvailable(),
		Rating:         d.Rating(),
		DailyTarget:    d.DailyTarget(),
		DeliveredCount: d.DeliveredCount(),
	}

	if location := d.Location(); location != nil {
		lat, lng := location.Lat(), location.Lng()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	return driver.RestoreDriver(
		id,
		dto.Name,
		dto.Available,
		location,
		dto.Rating,
		dto.DailyTarget,
		dto.DeliveredCount,
	), nil
}
