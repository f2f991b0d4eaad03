// Package jobs provides scheduled background tasks for the onboarding system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the admin review workflows.
//
// # Available Jobs
//
// 1. ReviewBacklogJob - Runs every ten minutes to report registrations and
// profile updates that are still waiting for an admin verdict
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reviewBacklogHandler, logger)
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
// - Backlog job logs query failures and keeps running on the next tick
// - An empty backlog produces no log line to keep the output quiet
// - Failed job starts will stop any already running jobs
package jobs
