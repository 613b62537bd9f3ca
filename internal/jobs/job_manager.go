package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	proofCleanupJob     *ProofCleanupJob
	staleOrderReportJob *StaleOrderReportJob
}

// NewJobManager creates a new job manager over the configured jobs.
func NewJobManager(proofCleanupJob *ProofCleanupJob, staleOrderReportJob *StaleOrderReportJob) *JobManager {
	return &JobManager{
		proofCleanupJob:     proofCleanupJob,
		staleOrderReportJob: staleOrderReportJob,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.proofCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start proof cleanup job: %w", err)
	}

	if err := jm.staleOrderReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.proofCleanupJob.Stop()
		return fmt.Errorf("failed to start stale order report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.proofCleanupJob.Stop()
	jm.staleOrderReportJob.Stop()
}
