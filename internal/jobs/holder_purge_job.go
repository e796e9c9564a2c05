package jobs

import (
	"context"
	"log/slog"
	"time"

	"valueguard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// HolderPurger runs the purge holders command.
type HolderPurger interface {
	Handle(ctx context.Context, cmd commands.PurgeHoldersCommand) (int64, error)
}

// HolderPurgeJob periodically deletes holders older than the retention period.
type HolderPurgeJob struct {
	handler   HolderPurger
	schedule  string
	retention time.Duration
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewHolderPurgeJob creates a purge job. schedule is a six-field cron
// expression (seconds first).
func NewHolderPurgeJob(
	handler HolderPurger,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *HolderPurgeJob {
	return &HolderPurgeJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "holder_purge_job"),
	}
}

// Start schedules the purge. An invalid schedule is returned as an error.
func (j *HolderPurgeJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Holder purge job started",
		"schedule", j.schedule, "retention", j.retention.String())
	return nil
}

// Run performs one purge immediately.
func (j *HolderPurgeJob) Run() {
	ctx := context.Background()

	cmd, err := commands.NewPurgeHoldersCommand(j.retention, j.now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Holder purge job misconfigured", "error", err)
		return
	}

	deleted, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Holder purge job failed", "error", err)
		return
	}

	if deleted > 0 {
		j.logger.InfoContext(ctx, "Expired holders purged", "deleted", deleted, "cutoff", cmd.Cutoff())
	}
}

// Stop stops the holder purge job and waits for a running purge to finish.
func (j *HolderPurgeJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Holder purge job stopped")
}
