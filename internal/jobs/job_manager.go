package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	holderPurgeJob *HolderPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeHandler HolderPurger,
	purgeSchedule string,
	retention time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		holderPurgeJob: NewHolderPurgeJob(purgeHandler, purgeSchedule, retention, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.holderPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start holder purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.holderPurgeJob.Stop()
}
