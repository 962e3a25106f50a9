package queries

import (
	"context"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriverKPIQueryHandler computes a driver's performance figures with
// direct SQL queries for optimal read performance in the CQRS pattern.
//
// The driver row itself is authoritative: a missing driver is NotFound. The
// derived counters are not: if the orders or assignments projection cannot be
// read, the handler logs the failure and serves zeroed stats instead of
// failing the whole request, so a dashboard degrades rather than breaks.
type GetDriverKPIQueryHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGetDriverKPIQueryHandler creates a handler for driver KPI queries.
func NewGetDriverKPIQueryHandler(db *gorm.DB, logger *slog.Logger) GetDriverKPIQueryHandler {
	return GetDriverKPIQueryHandler{
		db:     db,
		logger: logger.With("component", "get_driver_kpi"),
	}
}

// Handle executes the KPI computation for the driver on the query's date.
func (h GetDriverKPIQueryHandler) Handle(
	ctx context.Context,
	query GetDriverKPIQuery,
) (GetDriverKPIQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriverKPIQueryResponse{}, err
	}

	resp := GetDriverKPIQueryResponse{DriverID: query.DriverID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			rating,
			daily_target
		FROM drivers
		WHERE id = ?
	`, query.DriverID().String()).Row()

	var id uuid.UUID
	if err := row.Scan(&id, &resp.DriverName, &resp.Rating, &resp.DailyTarget); err != nil {
		return GetDriverKPIQueryResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID())
	}

	dayStart := time.Date(
		query.Date().Year(), query.Date().Month(), query.Date().Day(),
		0, 0, 0, 0, query.Date().Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(
		query.Date().Year(), query.Date().Month(), 1,
		0, 0, 0, 0, query.Date().Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	stats, err := h.loadStats(ctx, query.DriverID(), dayStart, dayEnd, monthStart, monthEnd)
	if err != nil {
		h.logger.WarnContext(ctx, "failed to compute driver stats, serving zeroed values",
			"driver_id", query.DriverID().String(), "error", err)
		stats = driverStats{}
	}

	resp.TotalDelivered = stats.totalDelivered
	resp.TodayDelivered = stats.todayDelivered
	resp.MonthDelivered = stats.monthDelivered
	resp.PendingAssignments = stats.pendingAssignments
	resp.InTransitOrders = stats.inTransitOrders
	resp.TargetMet = stats.todayDelivered >= resp.DailyTarget

	return resp, nil
}

type driverStats struct {
	totalDelivered     int
	todayDelivered     int
	monthDelivered     int
	pendingAssignments int
	inTransitOrders    int
}

func (h GetDriverKPIQueryHandler) loadStats(
	ctx context.Context,
	driverID kernel.UUID,
	dayStart, dayEnd, monthStart, monthEnd time.Time,
) (driverStats, error) {
	var stats driverStats

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE status = ?) AS total_delivered,
			COUNT(*) FILTER (WHERE status = ?
				AND actual_delivery_time >= ? AND actual_delivery_time < ?) AS today_delivered,
			COUNT(*) FILTER (WHERE status = ?
				AND actual_delivery_time >= ? AND actual_delivery_time < ?) AS month_delivered,
			COUNT(*) FILTER (WHERE status = ?) AS in_transit
		FROM orders
		WHERE driver_id = ?
	`,
		order.Delivered.String(),
		order.Delivered.String(), dayStart, dayEnd,
		order.Delivered.String(), monthStart, monthEnd,
		order.InTransit.String(),
		driverID.String(),
	).Row()

	if err := row.Scan(
		&stats.totalDelivered,
		&stats.todayDelivered,
		&stats.monthDelivered,
		&stats.inTransitOrders,
	); err != nil {
		return driverStats{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM order_assignments
		WHERE driver_id = ? AND status = ?
	`, driverID.String(), order.AssignmentPending.String()).Row()

	if err := row.Scan(&stats.pendingAssignments); err != nil {
		return driverStats{}, err
	}

	return stats, nil
}
