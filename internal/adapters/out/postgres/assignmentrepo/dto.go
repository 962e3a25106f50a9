// Package assignmentrepo persists broadcast assignment offers.
package assignmentrepo

import (
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// AssignmentDTO represents the database structure for one broadcast offer.
// The (order_id, driver_id) pair is unique within a wave; re-broadcasting
// deletes the previous wave first.
type AssignmentDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID `gorm:"type:uuid;index:idx_order_driver,unique"`
	DriverID uuid.UUID `gorm:"type:uuid;index:idx_order_driver,unique;index"`
	Status   string    `gorm:"index"`

	AssignedAt   time.Time
	RespondedAt  *time.Time
	RejectReason string
}

// TableName overrides GORM's default naming convention to use "order_assignments".
func (AssignmentDTO) TableName() string {
	return "order_assignments"
}

func fromDomain(a *order.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:           a.ID().Bytes(),
		OrderID:      a.OrderID().Bytes(),
		DriverID:     a.DriverID().Bytes(),
		Status:       a.Status().String(),
		AssignedAt:   a.AssignedAt(),
		RespondedAt:  a.RespondedAt(),
		RejectReason: a.RejectReason(),
	}
}

func toDomain(dto AssignmentDTO) (*order.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.AssignmentStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreAssignment(
		id, orderID, driverID,
		status,
		dto.AssignedAt, dto.RespondedAt,
		dto.RejectReason,
	), nil
}
