package depotrepo

import (
	"context"
	"errors"
	"strconv"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDepotRepository implements DepotRepository using GORM.
type GormDepotRepository struct {
	db *gorm.DB
}

// NewGormDepotRepository creates a new GORM depot repository.
func NewGormDepotRepository(db *gorm.DB) *GormDepotRepository {
	return &GormDepotRepository{db: db}
}

// AddDepot saves a new depot to the database.
func (r *GormDepotRepository) AddDepot(ctx context.Context, d *charging.Depot) error {
	if err := d.Validate(); err != nil {
		return err
	}

	dto := depotFromDomain(d)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetDepot retrieves a depot by ID.
func (r *GormDepotRepository) GetDepot(ctx context.Context, id kernel.UUID) (*charging.Depot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DepotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("depot", id.String())
		}
		return nil, err
	}

	return depotToDomain(dto)
}

// AddPort saves a new charging port to the database.
func (r *GormDepotRepository) AddPort(ctx context.Context, p *charging.ChargingPort) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := portFromDomain(p)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdatePort saves an existing charging port to the database.
func (r *GormDepotRepository) UpdatePort(ctx context.Context, p *charging.ChargingPort) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := portFromDomain(p)
	result := r.db.WithContext(ctx).Model(&PortDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("charging port", strconv.Itoa(p.PortNumber()))
	}

	return nil
}

// GetPort retrieves a charging port by ID.
func (r *GormDepotRepository) GetPort(ctx context.Context, id kernel.UUID) (*charging.ChargingPort, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PortDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("charging port", id.String())
		}
		return nil, err
	}

	return portToDomain(dto)
}

// GetPortsByDepot retrieves a depot's ports ordered by port number.
func (r *GormDepotRepository) GetPortsByDepot(
	ctx context.Context,
	depotID kernel.UUID,
) ([]*charging.ChargingPort, error) {
	if err := depotID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PortDTO
	err := r.db.WithContext(ctx).
		Where("depot_id = ?", depotID.Bytes()).
		Order("port_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	ports := make([]*charging.ChargingPort, 0, len(dtos))
	for _, dto := range dtos {
		p, err := portToDomain(dto)
		if err != nil {
			return nil, err
		}
		ports = append(ports, p)
	}

	return ports, nil
}
