package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/services"
	"greenfleet/internal/pkg/errs"
	"greenfleet/internal/pkg/lock"
)

// RespondAssignmentCommandHandler settles a driver's response to a broadcast
// offer. Responses for the same order are serialized on a per-order lock so
// exactly one accept can win; everything inside the lock runs in a single
// transaction.
type RespondAssignmentCommandHandler struct {
	uowFactory DispatchUoWFactory
	locks      *lock.KeyedMutex
	resolver   services.AssignmentResolver
	logger     *slog.Logger
}

// NewRespondAssignmentCommandHandler creates a handler for offer responses.
func NewRespondAssignmentCommandHandler(
	uowFactory DispatchUoWFactory,
	locks *lock.KeyedMutex,
	resolver services.AssignmentResolver,
	logger *slog.Logger,
) RespondAssignmentCommandHandler {
	return RespondAssignmentCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		resolver:   resolver,
		logger:     logger.With("component", "respond_assignment"),
	}
}

// Handle processes the response. An accept claims the order, engages the
// driver's vehicle, and cascade-rejects sibling offers; a late accept is
// auto-rejected and surfaces as a ConflictError with the reason
// "order already taken". A reject closes only the driver's own offer.
func (h *RespondAssignmentCommandHandler) Handle(ctx context.Context, cmd RespondAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lockKey := "order:" + cmd.OrderID().String()
	h.locks.Lock(lockKey)
	defer h.locks.Unlock(lockKey)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignment, err := uow.AssignmentRepository().GetPendingForResponse(ctx, cmd.OrderID(), cmd.DriverID())
	if err != nil {
		return err
	}
	if !assignment.IsPending() {
		return errs.NewConflictError("assignment already responded to")
	}

	now := time.Now()

	if !cmd.Accept() {
		if err = h.resolver.Reject(assignment, now, cmd.RejectReason()); err != nil {
			return err
		}
		if err = uow.AssignmentRepository().Update(ctx, assignment); err != nil {
			return err
		}
		return uow.Commit(ctx)
	}

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	vehicle, err := uow.VehicleRepository().GetClaimableByDriver(ctx, cmd.DriverID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewConflictErrorWithCause("driver has no claimable vehicle", err)
		}
		return err
	}

	siblings, err := uow.AssignmentRepository().GetByOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	resolveErr := h.resolver.Accept(o, assignment, siblings, vehicle.ID(), now)
	if resolveErr != nil && !errors.Is(resolveErr, errs.ErrConflict) {
		return resolveErr
	}

	// On a lost race the resolver auto-rejected the caller's own offer;
	// persist that closure before reporting the conflict.
	if err = uow.AssignmentRepository().Update(ctx, assignment); err != nil {
		return err
	}

	if resolveErr != nil {
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return resolveErr
	}

	if err = vehicle.ClaimForDelivery(o.ID()); err != nil {
		return err
	}

	if err = uow.VehicleRepository().Update(ctx, vehicle); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}
	for _, sibling := range siblings {
		if sibling.ID().IsEqual(assignment.ID()) {
			continue
		}
		if err = uow.AssignmentRepository().Update(ctx, sibling); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recordTracking(ctx, h.uowFactory.Create(), h.logger,
		o.ID(), o.Status(), nil, "driver accepted the order")

	return nil
}
