// Package jobs provides scheduled background tasks for the work-order engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic tracking the engine needs while orders run.
//
// # Available Jobs
//
// 1. ExecutionTrackingJob - Runs every second to snapshot progress on all InProgress work orders
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(trackExecutionHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The tracking job uses the cron expression "* * * * * *" which means it
// runs every second, keeping the floor view live between operator actions.
// Elapsed-time correctness does not depend on the job: the aggregate derives
// elapsed time from its recorded transitions, so a missed tick only delays
// the next snapshot.
//
// # Error Handling
//
// Tracking failures are logged and the pass is retried on the next tick.
package jobs
