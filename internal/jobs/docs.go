// Package jobs provides scheduled background tasks for the holder service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. HolderPurgeJob - Deletes holders created before now minus the retention period
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(purgeHandler, "0 */5 * * * *", 24*time.Hour, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six fields with seconds first, so "0 */5 * * * *" runs at the
// start of every fifth minute.
//
// # Error Handling
//
// Purge failures are logged and retried on the next tick.
// StartAll fails when a schedule expression cannot be parsed.
package jobs
