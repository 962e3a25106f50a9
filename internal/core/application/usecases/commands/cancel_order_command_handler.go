package commands

import (
	"context"
	"log/slog"
)

// CancelOrderCommandHandler aborts a non-terminal order and frees its engaged
// vehicle in the same transaction.
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		logger:     logger.With("component", "cancel_order"),
	}
}

// Handle processes the cancellation. Terminal orders fail with
// InvalidStateError; cancelling twice is not silently idempotent.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = o.Cancel(); err != nil {
		return err
	}

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

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordTracking(ctx, h.uowFactory.Create(), h.logger,
		o.ID(), o.Status(), nil, "order cancelled: "+cmd.Reason())

	return nil
}
