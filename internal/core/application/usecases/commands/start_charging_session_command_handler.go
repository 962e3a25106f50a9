package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/charging"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/lock"
)

// StartChargingSessionCommandHandler reserves a port and opens a charging
// session. Callers racing for the same port or the same driver are
// serialized on keyed locks; the port, vehicle, and session are committed in
// one transaction so a loser observes either nothing or the full claim.
type StartChargingSessionCommandHandler struct {
	uowFactory ChargingUoWFactory
	locks      *lock.KeyedMutex
	logger     *slog.Logger
}

// NewStartChargingSessionCommandHandler creates a handler for session starts.
func NewStartChargingSessionCommandHandler(
	uowFactory ChargingUoWFactory,
	locks *lock.KeyedMutex,
	logger *slog.Logger,
) StartChargingSessionCommandHandler {
	return StartChargingSessionCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		logger:     logger.With("component", "start_charging_session"),
	}
}

// Handle processes the session start. Failure modes map to the taxonomy:
// an occupied port is ResourceUnavailable naming the port number, a driver
// with a running session or no claimable vehicle is a Conflict, an inactive
// depot or mismatched port is a validation problem.
func (h *StartChargingSessionCommandHandler) Handle(ctx context.Context, cmd StartChargingSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	// Port before driver, always in this order, so two racing starts can
	// never deadlock against each other.
	portKey := "port:" + cmd.PortID().String()
	driverKey := "driver:" + cmd.DriverID().String()
	h.locks.Lock(portKey)
	defer h.locks.Unlock(portKey)
	h.locks.Lock(driverKey)
	defer h.locks.Unlock(driverKey)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	depot, err := uow.DepotRepository().GetDepot(ctx, cmd.DepotID())
	if err != nil {
		return err
	}
	if !depot.IsActive() {
		return errs.NewResourceUnavailableError("depot", depot.Name())
	}

	port, err := uow.DepotRepository().GetPort(ctx, cmd.PortID())
	if err != nil {
		return err
	}
	if !port.DepotID().IsEqual(depot.ID()) {
		return errs.NewValueIsInvalidError("port does not belong to depot")
	}

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	if _, err = uow.SessionRepository().GetInProgressByDriver(ctx, cmd.DriverID()); err == nil {
		return errs.NewConflictError("driver already has a charging session in progress")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	vehicle, err := uow.VehicleRepository().GetClaimableByDriver(ctx, cmd.DriverID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewConflictErrorWithCause("driver has no claimable vehicle", err)
		}
		return err
	}

	session, err := charging.NewChargingSession(
		cmd.SessionID(),
		vehicle.ID(),
		cmd.DriverID(),
		depot.ID(),
		port.ID(),
		port.PortNumber(),
		time.Now(),
		vehicle.Battery(),
	)
	if err != nil {
		return err
	}

	if err = port.Occupy(vehicle.ID()); err != nil {
		return err
	}
	if err = vehicle.ClaimForCharging(session.ID()); err != nil {
		return err
	}

	if err = uow.SessionRepository().Add(ctx, session); err != nil {
		return err
	}
	if err = uow.DepotRepository().UpdatePort(ctx, port); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, vehicle); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
