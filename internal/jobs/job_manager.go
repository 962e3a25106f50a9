package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"greenfleet/internal/core/application/usecases/commands"
	"greenfleet/internal/core/domain/services"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingBroadcastJob *PendingBroadcastJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	uowFactory commands.DispatchUoWFactory,
	broadcastHandler commands.BroadcastAssignmentCommandHandler,
	selector services.BroadcastSelector,
	staleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingBroadcastJob: NewPendingBroadcastJob(uowFactory, broadcastHandler, selector, staleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingBroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending broadcast job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingBroadcastJob.Stop()
}
