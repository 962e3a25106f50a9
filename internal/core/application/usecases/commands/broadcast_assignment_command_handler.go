package commands

import (
	"context"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
	"greenfleet/internal/core/ports"
	"greenfleet/internal/pkg/errs"
)

// BroadcastAssignmentCommandHandler offers a pending order to a set of
// drivers. A re-broadcast wipes the previous wave of offers first, so at most
// one wave of assignments exists per order.
type BroadcastAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewBroadcastAssignmentCommandHandler creates a handler for broadcast operations.
func NewBroadcastAssignmentCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) BroadcastAssignmentCommandHandler {
	return BroadcastAssignmentCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "broadcast_assignment"),
	}
}

// Handle processes the broadcast command. The order must still be claimable;
// prior assignments are deleted and one Pending assignment per driver is
// created in a single transaction. Drivers are notified after the commit,
// best-effort.
func (h *BroadcastAssignmentCommandHandler) Handle(ctx context.Context, cmd BroadcastAssignmentCommand) error {
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

	if !o.IsClaimable() {
		return errs.NewInvalidStateError("broadcast assignment", o.Status().String())
	}

	driverRepo := uow.DriverRepository()
	drivers := make([]kernel.UUID, 0, len(cmd.DriverIDs()))
	for _, driverID := range cmd.DriverIDs() {
		if _, err = driverRepo.Get(ctx, driverID); err != nil {
			return err
		}
		drivers = append(drivers, driverID)
	}

	assignmentRepo := uow.AssignmentRepository()
	if err = assignmentRepo.DeleteByOrder(ctx, o.ID()); err != nil {
		return err
	}

	now := time.Now()
	for _, driverID := range drivers {
		assignment, err := order.NewAssignment(kernel.NewUUID(), o.ID(), driverID, now)
		if err != nil {
			return err
		}
		if err = assignmentRepo.Add(ctx, assignment); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, driverID := range drivers {
		notifyErr := h.notifier.Notify(ctx, ports.Notification{
			UserID:  driverID,
			Title:   "New delivery offer",
			Message: "Order " + o.OrderCode() + " is up for grabs near you",
			Payload: map[string]any{"order_id": o.ID().String()},
		})
		if notifyErr != nil {
			h.logger.WarnContext(ctx, "failed to notify driver",
				"driver_id", driverID.String(), "order_id", o.ID().String(), "error", notifyErr)
		}
	}

	return nil
}
