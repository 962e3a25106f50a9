package queries

import (
	"context"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetFleetKPIQueryHandler builds the fleet-wide daily board with a single
// SQL pass over drivers joined to their delivered orders.
type GetFleetKPIQueryHandler struct {
	db *gorm.DB
}

// NewGetFleetKPIQueryHandler creates a handler for fleet KPI queries.
func NewGetFleetKPIQueryHandler(db *gorm.DB) GetFleetKPIQueryHandler {
	return GetFleetKPIQueryHandler{db: db}
}

// Handle executes the query. Drivers with zero deliveries on the date still
// appear with a zero count; rows are sorted by today's deliveries descending
// so the board reads like a leaderboard.
func (h GetFleetKPIQueryHandler) Handle(
	ctx context.Context,
	query GetFleetKPIQuery,
) (GetFleetKPIQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetFleetKPIQueryResponse{}, err
	}

	dayStart := time.Date(
		query.Date().Year(), query.Date().Month(), query.Date().Day(),
		0, 0, 0, 0, query.Date().Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	resp := GetFleetKPIQueryResponse{
		Date:    dayStart,
		Drivers: make([]FleetDriverRow, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.name,
			d.rating,
			d.daily_target,
			COUNT(o.id) FILTER (WHERE o.status = ?
				AND o.actual_delivery_time >= ? AND o.actual_delivery_time < ?) AS today_delivered,
			COUNT(o.id) FILTER (WHERE o.status = ?) AS in_transit
		FROM drivers d
		LEFT JOIN orders o ON o.driver_id = d.id
		GROUP BY d.id, d.name, d.rating, d.daily_target
		ORDER BY today_delivered DESC, d.name
	`,
		order.Delivered.String(), dayStart, dayEnd,
		order.InTransit.String(),
	).Rows()
	if err != nil {
		return GetFleetKPIQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var row FleetDriverRow
		var id uuid.UUID
		var inTransit int

		if err = rows.Scan(
			&id,
			&row.DriverName,
			&row.Rating,
			&row.DailyTarget,
			&row.TodayDelivered,
			&inTransit,
		); err != nil {
			return GetFleetKPIQueryResponse{}, err
		}

		driverID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return GetFleetKPIQueryResponse{}, idErr
		}
		row.DriverID = driverID
		row.TargetMet = row.TodayDelivered >= row.DailyTarget

		resp.Drivers = append(resp.Drivers, row)
		resp.TotalDelivered += row.TodayDelivered
		if inTransit > 0 {
			resp.DriversOnRoad++
		}
	}

	if err = rows.Err(); err != nil {
		return GetFleetKPIQueryResponse{}, err
	}

	return resp, nil
}
