package orderrepo

import (
	"context"
	"errors"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database. Nil-able columns are
// written explicitly so a cleared field does not survive as its old value.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetStalePending retrieves pending unclaimed orders created before the
// cutoff that have no broadcast offer still awaiting a response. These are
// the orders the re-broadcast job picks up.
func (r *GormOrderRepository) GetStalePending(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND driver_id IS NULL AND created_at < ?", order.Pending.String(), cutoff).
		Where("NOT EXISTS (SELECT 1 FROM order_assignments a WHERE a.order_id = orders.id AND a.status = ?)",
			order.AssignmentPending.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// AddTracking appends one history row for the order.
func (r *GormOrderRepository) AddTracking(ctx context.Context, entry *order.TrackingEntry) error {
	dto := trackingFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetTracking retrieves the order's history in chronological order.
func (r *GormOrderRepository) GetTracking(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*order.TrackingEntry, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []TrackingDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*order.TrackingEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := trackingToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
