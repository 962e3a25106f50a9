// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate and its append-only tracking history, handling the conversion
// between domain entities and database representations.
package orderrepo

import (
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status is stored by its persistence name so that raw SQL on the read side
// stays legible; coordinates are flattened into lat/lng column pairs.
type OrderDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderCode string     `gorm:"uniqueIndex"`
	Status    string     `gorm:"index"`
	DriverID  *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID *uuid.UUID `gorm:"type:uuid"`

	PickupAddress   string
	PickupLat       float64
	PickupLng       float64
	DeliveryAddress string
	DeliveryLat     float64
	DeliveryLng     float64

	CurrentLat *float64
	CurrentLng *float64

	Price decimal.Decimal `gorm:"type:numeric(12,2)"`

	EstimatedPickupTime   *time.Time
	EstimatedDeliveryTime *time.Time
	ActualPickupTime      *time.Time
	ActualDeliveryTime    *time.Time

	ProofPhotoURL  string
	ProofSignature string
	ReceiverName   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// TrackingDTO represents one row of an order's status history.
type TrackingDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`
	Status  string
	Lat     *float64
	Lng     *float64
	Note    string

	CreatedAt time.Time
}

// TableName overrides GORM's default naming convention to use "order_tracking".
func (TrackingDTO) TableName() string {
	return "order_tracking"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		OrderCode:             aggregate.OrderCode(),
		Status:                aggregate.Status().String(),
		DriverID:              optionalUUID(aggregate.Driver()),
		VehicleID:             optionalUUID(aggregate.Vehicle()),
		PickupAddress:         aggregate.PickupAddress(),
		PickupLat:             aggregate.PickupPoint().Lat(),
		PickupLng:             aggregate.PickupPoint().Lng(),
		DeliveryAddress:       aggregate.DeliveryAddress(),
		DeliveryLat:           aggregate.DeliveryPoint().Lat(),
		DeliveryLng:           aggregate.DeliveryPoint().Lng(),
		Price:                 aggregate.Price(),
		EstimatedPickupTime:   aggregate.EstimatedPickupTime(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		ActualPickupTime:      aggregate.ActualPickupTime(),
		ActualDeliveryTime:    aggregate.ActualDeliveryTime(),
		ProofPhotoURL:         aggregate.ProofPhotoURL(),
		ProofSignature:        aggregate.ProofSignature(),
		ReceiverName:          aggregate.ReceiverName(),
	}

	if point := aggregate.CurrentPoint(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.CurrentLat = &lat
		dto.CurrentLng = &lng
	}

	return dto
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	driverID, err := optionalKernelUUID(dto.DriverID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := optionalKernelUUID(dto.VehicleID)
	if err != nil {
		return nil, err
	}

	pickupPoint, err := kernel.NewGeoPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	deliveryPoint, err := kernel.NewGeoPoint(dto.DeliveryLat, dto.DeliveryLng)
	if err != nil {
		return nil, err
	}

	var currentPoint *kernel.GeoPoint
	if dto.CurrentLat != nil && dto.CurrentLng != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.CurrentLat, *dto.CurrentLng)
		if pointErr != nil {
			return nil, pointErr
		}
		currentPoint = &point
	}

	return order.RestoreOrder(
		id,
		dto.OrderCode,
		status,
		driverID, vehicleID,
		dto.PickupAddress, pickupPoint,
		dto.DeliveryAddress, deliveryPoint,
		currentPoint,
		dto.Price,
		dto.EstimatedPickupTime, dto.EstimatedDeliveryTime,
		dto.ActualPickupTime, dto.ActualDeliveryTime,
		dto.ProofPhotoURL, dto.ProofSignature, dto.ReceiverName,
	), nil
}

func trackingFromDomain(entry *order.TrackingEntry) TrackingDTO {
	dto := TrackingDTO{
		ID:        entry.ID().Bytes(),
		OrderID:   entry.OrderID().Bytes(),
		Status:    entry.Status().String(),
		Note:      entry.Note(),
		CreatedAt: entry.CreatedAt(),
	}

	if point := entry.Point(); point != nil {
		lat, lng := point.Lat(), point.Lng()
		dto.Lat = &lat
		dto.Lng = &lng
	}

	return dto
}

func trackingToDomain(dto TrackingDTO) (*order.TrackingEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var point *kernel.GeoPoint
	if dto.Lat != nil && dto.Lng != nil {
		p, pointErr := kernel.NewGeoPoint(*dto.Lat, *dto.Lng)
		if pointErr != nil {
			return nil, pointErr
		}
		point = &p
	}

	return order.RestoreTrackingEntry(id, orderID, status, point, dto.Note, dto.CreatedAt), nil
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
