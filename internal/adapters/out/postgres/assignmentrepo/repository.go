package assignmentrepo

import (
	"context"
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAssignmentRepository implements AssignmentRepository using GORM.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add saves a new assignment offer to the database.
func (r *GormAssignmentRepository) Add(ctx context.Context, a *order.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing assignment to the database.
func (r *GormAssignmentRepository) Update(ctx context.Context, a *order.Assignment) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := fromDomain(a)
	result := r.db.WithContext(ctx).Model(&AssignmentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("assignment", a.ID())
	}

	return nil
}

// GetPendingForResponse retrieves the driver's offer for the order. When the
// offer has already been answered the answered row is returned so the caller
// can report a conflict; only a missing offer is NotFound.
func (r *GormAssignmentRepository) GetPendingForResponse(
	ctx context.Context,
	orderID, driverID kernel.UUID,
) (*order.Assignment, error) {
	var dto AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND driver_id = ?", orderID.Bytes(), driverID.Bytes()).
		Order("assigned_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves every assignment in the order's current wave.
func (r *GormAssignmentRepository) GetByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetPendingByDriver retrieves the driver's open offers across all orders.
func (r *GormAssignmentRepository) GetPendingByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*order.Assignment, error) {
	var dtos []AssignmentDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), order.AssignmentPending.String()).
		Order("assigned_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// DeleteByOrder removes the order's previous broadcast wave.
func (r *GormAssignmentRepository) DeleteByOrder(ctx context.Context, orderID kernel.UUID) error {
	return r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Delete(&AssignmentDTO{}).Error
}

func toDomainSlice(dtos []AssignmentDTO) ([]*order.Assignment, error) {
	assignments := make([]*order.Assignment, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, nil
}
