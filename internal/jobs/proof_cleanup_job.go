package jobs

import (
	"context"
	"log/slog"

	"orderdelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultProofCleanupSchedule runs the sweep every ten minutes.
const DefaultProofCleanupSchedule = "*/10 * * * *"

// ProofCleanupJob periodically removes proof images that no database record
// references.
type ProofCleanupJob struct {
	handler  commands.RemoveOrphanedProofImagesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewProofCleanupJob creates a job that sweeps orphaned proof images on the
// given cron schedule.
func NewProofCleanupJob(
	handler commands.RemoveOrphanedProofImagesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *ProofCleanupJob {
	if schedule == "" {
		schedule = DefaultProofCleanupSchedule
	}

	return &ProofCleanupJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "proof_cleanup_job"),
	}
}

// Start schedules the sweep.
func (j *ProofCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		removed, err := j.handler.Handle(ctx, commands.NewRemoveOrphanedProofImagesCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Proof cleanup job failed", "error", err)
			return
		}
		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed orphaned proof images", "count", removed)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Proof cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *ProofCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Proof cleanup job stopped")
}
