package queries

import (
	"context"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDepotStatsQueryHandler counts a depot's ports by status in one pass.
type GetDepotStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetDepotStatsQueryHandler creates a handler for depot stats queries.
func NewGetDepotStatsQueryHandler(db *gorm.DB) GetDepotStatsQueryHandler {
	return GetDepotStatsQueryHandler{db: db}
}

// Handle executes the query. An unknown depot is NotFound rather than a zero
// row, so callers can distinguish "empty depot" from "no such depot".
func (h GetDepotStatsQueryHandler) Handle(
	ctx context.Context,
	query GetDepotStatsQuery,
) (GetDepotStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDepotStatsQueryResponse{}, err
	}

	resp := GetDepotStatsQueryResponse{DepotID: query.DepotID()}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, name, active
		FROM charging_depots
		WHERE id = ?
	`, query.DepotID().String()).Row()

	var id uuid.UUID
	if err := row.Scan(&id, &resp.Name, &resp.Active); err != nil {
		return GetDepotStatsQueryResponse{}, errs.NewObjectNotFoundError("depot", query.DepotID())
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = ?) AS available,
			COUNT(*) FILTER (WHERE status = ?) AS occupied,
			COUNT(*) FILTER (WHERE status = ?) AS maintenance,
			COUNT(*) FILTER (WHERE status = ?) AS offline
		FROM charging_ports
		WHERE depot_id = ?
	`,
		charging.PortAvailable.String(),
		charging.PortInUse.String(),
		charging.PortMaintenance.String(),
		charging.PortOffline.String(),
		query.DepotID().String(),
	).Row()

	if err := row.Scan(
		&resp.TotalPorts,
		&resp.AvailablePorts,
		&resp.OccupiedPorts,
		&resp.MaintenancePorts,
		&resp.OfflinePorts,
	); err != nil {
		return GetDepotStatsQueryResponse{}, err
	}

	row = h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM charging_sessions
		WHERE depot_id = ? AND status = ?
	`, query.DepotID().String(), charging.SessionInProgress.String()).Row()

	if err := row.Scan(&resp.ActiveSessions); err != nil {
		return GetDepotStatsQueryResponse{}, err
	}

	return resp, nil
}
