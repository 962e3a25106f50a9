package commands

import (
	"context"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/lock"
)

// EndChargingSessionCommandHandler completes a running session, frees its
// port, and returns the vehicle to service with the reported battery level.
// Ending the same session twice is a ConflictError, never a double release.
type EndChargingSessionCommandHandler struct {
	uowFactory ChargingUoWFactory
	locks      *lock.KeyedMutex
	logger     *slog.Logger
}

// NewEndChargingSessionCommandHandler creates a handler for session ends.
func NewEndChargingSessionCommandHandler(
	uowFactory ChargingUoWFactory,
	locks *lock.KeyedMutex,
	logger *slog.Logger,
) EndChargingSessionCommandHandler {
	return EndChargingSessionCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		logger:     logger.With("component", "end_charging_session"),
	}
}

// Handle processes the session end in a single transaction: session
// completed with readings, port released, vehicle Available again.
func (h *EndChargingSessionCommandHandler) Handle(ctx context.Context, cmd EndChargingSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	sessionKey := "session:" + cmd.SessionID().String()
	h.locks.Lock(sessionKey)
	defer h.locks.Unlock(sessionKey)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	session, err := uow.SessionRepository().Get(ctx, cmd.SessionID())
	if err != nil {
		return err
	}

	var endBattery *kernel.BatteryLevel
	if cmd.EndBatteryPercent() != nil {
		level, err := kernel.NewBatteryLevel(*cmd.EndBatteryPercent())
		if err != nil {
			return err
		}
		endBattery = &level
	}

	if err = session.Complete(time.Now(), endBattery, cmd.EnergyKWh()); err != nil {
		return err
	}

	port, err := uow.DepotRepository().GetPort(ctx, session.PortID())
	if err != nil {
		return err
	}
	if err = port.Release(); err != nil {
		return err
	}

	vehicle, err := uow.VehicleRepository().Get(ctx, session.VehicleID())
	if err != nil {
		return err
	}

	finalBattery := vehicle.Battery()
	if endBattery != nil {
		finalBattery = *endBattery
	}
	if err = vehicle.FinishCharging(finalBattery); err != nil {
		return err
	}

	if err = uow.SessionRepository().Update(ctx, session); err != nil {
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
