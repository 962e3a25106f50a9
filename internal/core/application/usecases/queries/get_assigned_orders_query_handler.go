package queries

import (
	"context"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAssignedOrdersQueryHandler builds a driver's current work list: active
// orders they own plus open broadcast offers.
type GetAssignedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedOrdersQueryHandler creates a handler for work list queries.
func NewGetAssignedOrdersQueryHandler(db *gorm.DB) GetAssignedOrdersQueryHandler {
	return GetAssignedOrdersQueryHandler{db: db}
}

// Handle executes the query. Open offers come first so the driver sees what
// needs a response before what is already in hand.
func (h GetAssignedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedOrdersQuery,
) ([]AssignedOrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]AssignedOrderRow, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_code,
			o.status,
			o.pickup_address,
			o.pickup_lat,
			o.pickup_lng,
			o.delivery_address,
			o.delivery_lat,
			o.delivery_lng,
			o.price,
			(a.id IS NOT NULL) AS offer_pending,
			COALESCE(a.assigned_at, o.created_at) AS assigned_at
		FROM orders o
		LEFT JOIN order_assignments a
			ON a.order_id = o.id AND a.driver_id = ? AND a.status = ?
		WHERE (o.driver_id = ? AND o.status IN (?, ?, ?))
			OR a.id IS NOT NULL
		ORDER BY offer_pending DESC, assigned_at
	`,
		query.DriverID().String(), order.AssignmentPending.String(),
		query.DriverID().String(),
		order.Confirmed.String(), order.PickupReady.String(), order.InTransit.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row AssignedOrderRow
		var id uuid.UUID
		var pickupLat, pickupLng, deliveryLat, deliveryLng float64
		var price decimal.Decimal

		if err = rows.Scan(
			&id,
			&row.OrderCode,
			&row.Status,
			&row.PickupAddress,
			&pickupLat,
			&pickupLng,
			&row.DeliveryAddress,
			&deliveryLat,
			&deliveryLng,
			&price,
			&row.OfferPending,
			&row.AssignedAt,
		); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.OrderID = orderID
		row.Price = price

		if row.PickupPoint, err = kernel.NewGeoPoint(pickupLat, pickupLng); err != nil {
			return nil, err
		}
		if row.DeliveryPoint, err = kernel.NewGeoPoint(deliveryLat, deliveryLng); err != nil {
			return nil, err
		}

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
