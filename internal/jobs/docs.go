// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatch.
//
// # Available Jobs
//
// 1. PendingBroadcastJob - Runs every 30 seconds to re-broadcast Pending
// orders that have no open offer and have waited longer than the stale window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(uowFactory, broadcastHandler, selector, staleAfter, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Empty results (no stale orders, no drivers in range) are expected business
// outcomes and are not logged as errors
// - Broadcast conflicts from drivers claiming an order mid-run are ignored
// - Failed job starts report the failing job by name
package jobs
