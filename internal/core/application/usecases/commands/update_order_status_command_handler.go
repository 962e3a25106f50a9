package commands

import (
	"context"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/order"
)

// UpdateOrderStatusCommandHandler moves an order along its lifecycle edge
// set, stamping actual pickup/delivery times as transitions dictate. Moving
// into a terminal status releases the engaged vehicle so it never leaks.
type UpdateOrderStatusCommandHandler struct {
	uowFactory DispatchUoWFactory
	logger     *slog.Logger
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory DispatchUoWFactory,
	logger *slog.Logger,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "update_order_status"),
	}
}

// Handle processes the status update. A tracking entry with the reported
// position and note is appended best-effort after the commit.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	if err = o.TransitionTo(cmd.NewStatus(), time.Now()); err != nil {
		return err
	}

	if cmd.Point() != nil {
		if err = o.UpdatePosition(*cmd.Point()); err != nil {
			return err
		}
	}

	if o.Status().IsTerminal() && o.Vehicle() != nil {
		if err = h.releaseVehicle(ctx, uow, o); err != nil {
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
		o.ID(), o.Status(), cmd.Point(), cmd.Note())

	return nil
}

func (h *UpdateOrderStatusCommandHandler) releaseVehicle(
	ctx context.Context,
	uow DispatchUoW,
	o *order.Order,
) error {
	v, err := uow.VehicleRepository().Get(ctx, *o.Vehicle())
	if err != nil {
		return err
	}

	if err = v.ReleaseFromDelivery(); err != nil {
		return err
	}

	return uow.VehicleRepository().Update(ctx, v)
}
