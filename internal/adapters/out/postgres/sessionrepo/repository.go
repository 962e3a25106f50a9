package sessionrepo

import (
	"context"
	"errors"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db *gorm.DB
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB) *GormSessionRepository {
	return &GormSessionRepository{db: db}
}

// Add saves a new charging session to the database.
func (r *GormSessionRepository) Add(ctx context.Context, s *charging.ChargingSession) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing charging session to the database.
func (r *GormSessionRepository) Update(ctx context.Context, s *charging.ChargingSession) error {
	if err := s.Validate(); err != nil {
		return err
	}

	dto := fromDomain(s)
	result := r.db.WithContext(ctx).Model(&SessionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("charging session", s.ID())
	}

	return nil
}

// Get retrieves a charging session by ID.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*charging.ChargingSession, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("charging session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetInProgressByDriver retrieves the driver's running session, if any.
func (r *GormSessionRepository) GetInProgressByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) (*charging.ChargingSession, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dto SessionDTO
	err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status = ?", driverID.Bytes(), charging.SessionInProgress.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("charging session", driverID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
