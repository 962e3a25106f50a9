package commands

import (
	"context"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/pkg/errs"
)

// DriverCheckinCommandHandler handles driver progress reports on their own
// orders. A pickup check-in moves the order in transit; a delivery check-in
// records proof, completes the order, frees the vehicle, and bumps the
// driver's lifetime delivered counter.
type DriverCheckinCommandHandler struct {
	uowFactory DispatchUoWFactory
	logger     *slog.Logger
}

// NewDriverCheckinCommandHandler creates a handler for driver check-ins.
func NewDriverCheckinCommandHandler(
	uowFactory DispatchUoWFactory,
	logger *slog.Logger,
) DriverCheckinCommandHandler {
	return DriverCheckinCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "driver_checkin"),
	}
}

// Handle processes the check-in. A driver can only check in on orders
// assigned to them; anything else fails with ForbiddenError before any state
// is touched.
func (h *DriverCheckinCommandHandler) Handle(ctx context.Context, cmd DriverCheckinCommand) error {
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

	if !o.BelongsTo(cmd.DriverID()) {
		return errs.NewForbiddenError("driver "+cmd.DriverID().String(), "order "+o.OrderCode())
	}

	now := time.Now()
	note := ""

	switch cmd.Kind() {
	case CheckinPickup:
		if err = o.TransitionTo(order.InTransit, now); err != nil {
			return err
		}
		note = "driver picked up the parcel"

	case CheckinDelivery:
		if o.Status() != order.InTransit {
			return errs.NewInvalidStateError("delivery checkin", o.Status().String())
		}

		o.RecordProof(cmd.PhotoURL(), cmd.Signature(), cmd.ReceiverName())
		if err = o.CompleteDelivery(now); err != nil {
			return err
		}
		note = "driver delivered the parcel"

		if err = h.settleDelivery(ctx, uow, o, cmd); err != nil {
			return err
		}
	}

	if cmd.Point() != nil {
		if err = o.UpdatePosition(*cmd.Point()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordTracking(ctx, h.uowFactory.Create(), h.logger,
		o.ID(), o.Status(), cmd.Point(), note)

	return nil
}

// settleDelivery frees the vehicle and credits the driver inside the same
// transaction as the order completion.
func (h *DriverCheckinCommandHandler) settleDelivery(
	ctx context.Context,
	uow DispatchUoW,
	o *order.Order,
	cmd DriverCheckinCommand,
) error {
	if o.Vehicle() != nil {
		v, err := uow.VehicleRepository().Get(ctx, *o.Vehicle())
		if err != nil {
			return err
		}
		if err = v.ReleaseFromDelivery(); err != nil {
			return err
		}
		if err = uow.VehicleRepository().Update(ctx, v); err != nil {
			return err
		}
	}

	d, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	d.RecordDelivery()

	return uow.DriverRepository().Update(ctx, d)
}
