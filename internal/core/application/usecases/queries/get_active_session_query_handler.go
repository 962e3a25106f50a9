package queries

import (
	"context"
	"database/sql"
	"errors"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveSessionQueryHandler looks up a driver's running charging session.
type GetActiveSessionQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveSessionQueryHandler creates a handler for active-session queries.
func NewGetActiveSessionQueryHandler(db *gorm.DB) GetActiveSessionQueryHandler {
	return GetActiveSessionQueryHandler{db: db}
}

// Handle executes the query. No running session is NotFound.
func (h GetActiveSessionQueryHandler) Handle(
	ctx context.Context,
	query GetActiveSessionQuery,
) (GetActiveSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveSessionQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.vehicle_id,
			s.depot_id,
			d.name,
			s.port_number,
			s.start_time,
			s.start_battery
		FROM charging_sessions s
		JOIN charging_depots d ON d.id = s.depot_id
		WHERE s.driver_id = ? AND s.status = ?
	`, query.DriverID().String(), charging.SessionInProgress.String()).Row()

	var resp GetActiveSessionQueryResponse
	var sessionID, vehicleID, depotID uuid.UUID

	err := row.Scan(
		&sessionID,
		&vehicleID,
		&depotID,
		&resp.DepotName,
		&resp.PortNumber,
		&resp.StartTime,
		&resp.StartBattery,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetActiveSessionQueryResponse{},
				errs.NewObjectNotFoundError("charging session", query.DriverID())
		}
		return GetActiveSessionQueryResponse{}, err
	}

	if resp.SessionID, err = kernel.UUIDFromBytes(sessionID[:]); err != nil {
		return GetActiveSessionQueryResponse{}, err
	}
	if resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
		return GetActiveSessionQueryResponse{}, err
	}
	if resp.DepotID, err = kernel.UUIDFromBytes(depotID[:]); err != nil {
		return GetActiveSessionQueryResponse{}, err
	}

	return resp, nil
}
