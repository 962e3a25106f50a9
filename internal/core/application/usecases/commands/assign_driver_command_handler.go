package commands

import (
	"context"
	"errors"
	"log/slog"

	"greenfleet/internal/core/domain/model/vehicle"
	"greenfleet/internal/core/ports"
	"greenfleet/internal/pkg/errs"
)

// AssignDriverCommandHandler handles administrative driver assignment. The
// order moves to Confirmed with the driver and vehicle set, and the vehicle
// is engaged immediately so no one else can claim it while the driver heads
// to the pickup point.
type AssignDriverCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewAssignDriverCommandHandler creates a handler for direct assignment.
func NewAssignDriverCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) AssignDriverCommandHandler {
	return AssignDriverCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "assign_driver"),
	}
}

// Handle processes the direct assignment. The driver is notified after the
// commit, best-effort.
func (h *AssignDriverCommandHandler) Handle(ctx context.Context, cmd AssignDriverCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = uow.DriverRepository().Get(ctx, cmd.DriverID()); err != nil {
		return err
	}

	v, err := h.resolveVehicle(ctx, uow, cmd)
	if err != nil {
		return err
	}

	// A Confirmed order being reassigned may still hold the previous
	// driver's claimed vehicle; release it in the same transaction or it
	// stays engaged with an order that no longer references it.
	if prev := o.Vehicle(); prev != nil && !prev.IsEqual(v.ID()) {
		replaced, err := uow.VehicleRepository().Get(ctx, *prev)
		if err != nil {
			return err
		}
		if err = replaced.ReleaseFromDelivery(); err != nil {
			return err
		}
		if err = uow.VehicleRepository().Update(ctx, replaced); err != nil {
			return err
		}
	}

	if err = o.AssignDriver(cmd.DriverID(), v.ID()); err != nil {
		return err
	}
	if err = v.ClaimForDelivery(o.ID()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, v); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyErr := h.notifier.Notify(ctx, ports.Notification{
		UserID:  cmd.DriverID(),
		Title:   "Order assigned to you",
		Message: "Order " + o.OrderCode() + " was assigned to you by dispatch",
		Payload: map[string]any{"order_id": o.ID().String()},
	})
	if notifyErr != nil {
		h.logger.WarnContext(ctx, "failed to notify driver",
			"driver_id", cmd.DriverID().String(), "order_id", o.ID().String(), "error", notifyErr)
	}

	return nil
}

func (h *AssignDriverCommandHandler) resolveVehicle(
	ctx context.Context,
	uow DispatchUoW,
	cmd AssignDriverCommand,
) (*vehicle.Vehicle, error) {
	if cmd.VehicleID() != nil {
		return uow.VehicleRepository().Get(ctx, *cmd.VehicleID())
	}

	v, err := uow.VehicleRepository().GetClaimableByDriver(ctx, cmd.DriverID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewConflictErrorWithCause("driver has no claimable vehicle", err)
		}
		return nil, err
	}
	return v, nil
}
