package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/core/domain/services"
	"greenfleet/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// PendingBroadcastJob re-broadcasts orders that sat in Pending with no open
// offer for longer than the stale window. Runs every 30 seconds.
type PendingBroadcastJob struct {
	uowFactory commands.DispatchUoWFactory
	handler    commands.BroadcastAssignmentCommandHandler
	selector   services.BroadcastSelector
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewPendingBroadcastJob creates the re-broadcast job. staleAfter controls how
// long an unoffered Pending order may wait before it is picked up again.
func NewPendingBroadcastJob(
	uowFactory commands.DispatchUoWFactory,
	handler commands.BroadcastAssignmentCommandHandler,
	selector services.BroadcastSelector,
	staleAfter time.Duration,
	logger *slog.Logger,
) *PendingBroadcastJob {
	return &PendingBroadcastJob{
		uowFactory: uowFactory,
		handler:    handler,
		selector:   selector,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "pending_broadcast_job"),
	}
}

// Start schedules the job to run every 30 seconds.
func (j *PendingBroadcastJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		j.run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending broadcast job started (running every 30 seconds)")
	return nil
}

// Stop stops the job.
func (j *PendingBroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending broadcast job stopped")
}

func (j *PendingBroadcastJob) run(ctx context.Context) {
	// Reads run outside a transaction; the broadcast command opens its own.
	uow := j.uowFactory.Create()

	cutoff := time.Now().Add(-j.staleAfter)
	stale, err := uow.OrderRepository().GetStalePending(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load stale pending orders", "error", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	drivers, err := uow.DriverRepository().GetAllAvailable(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to load available drivers", "error", err)
		return
	}

	for _, o := range stale {
		nearby := j.selector.SelectNearby(drivers, o.PickupPoint())
		if len(nearby) == 0 {
			// No driver in range is an expected outcome; the next run retries.
			j.logger.DebugContext(ctx, "No drivers in range for stale order",
				"order_id", o.ID().String())
			continue
		}

		driverIDs := make([]kernel.UUID, len(nearby))
		for i, d := range nearby {
			driverIDs[i] = d.ID()
		}

		cmd, err := commands.NewBroadcastAssignmentCommand(o.ID(), driverIDs)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build broadcast command",
				"order_id", o.ID().String(), "error", err)
			continue
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// A driver may have claimed the order between the read and the
			// broadcast, leaving it non-Pending or conflicted; that race is
			// fine.
			if errors.Is(err, errs.ErrConflict) ||
				errors.Is(err, errs.ErrObjectNotFound) ||
				errors.Is(err, errs.ErrInvalidState) {
				j.logger.DebugContext(ctx, "Order no longer broadcastable",
					"order_id", o.ID().String(), "error", err)
				continue
			}
			j.logger.ErrorContext(ctx, "Failed to re-broadcast order",
				"order_id", o.ID().String(), "error", err)
			continue
		}

		j.logger.InfoContext(ctx, "Re-broadcast stale order",
			"order_id", o.ID().String(), "drivers", len(driverIDs))
	}
}
