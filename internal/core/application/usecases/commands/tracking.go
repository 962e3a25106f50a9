package commands

import (
	"context"
	"log/slog"
	"time"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/model/order"
)

// recordTracking appends a history entry in its own short transaction after
// the business transaction committed. History is best-effort: failures are
// logged and never surfaced to the caller, so a flaky tracking write cannot
// fail an already-committed operation.
func recordTracking(
	ctx context.Context,
	uow OrderUoW,
	logger *slog.Logger,
	orderID kernel.UUID,
	status order.Status,
	point *kernel.GeoPoint,
	note string,
) {
	entry, err := order.NewTrackingEntry(kernel.NewUUID(), orderID, status, point, note, time.Now())
	if err != nil {
		logger.WarnContext(ctx, "failed to build tracking entry",
			"order_id", orderID.String(), "error", err)
		return
	}

	if err = uow.Begin(ctx); err != nil {
		logger.WarnContext(ctx, "failed to begin tracking transaction",
			"order_id", orderID.String(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().AddTracking(ctx, entry); err != nil {
		logger.WarnContext(ctx, "failed to append tracking entry",
			"order_id", orderID.String(), "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		logger.WarnContext(ctx, "failed to commit tracking entry",
			"order_id", orderID.String(), "error", err)
	}
}
