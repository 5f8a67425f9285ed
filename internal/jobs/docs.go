// Package jobs provides scheduled background tasks for the home bar service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the ordering service.
//
// # Available Jobs
//
// 1. NotificationRepostJob - Runs every 30 seconds to post the interactive
// chat message for live orders that have none (the notification channel was
// unavailable when they were placed).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(repostHandler, logger)
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
// The repost sweep is best-effort end to end: a failed post leaves the order
// for the next run, and only sweep-level failures are logged as errors.
package jobs
