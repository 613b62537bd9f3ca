// Package jobs provides scheduled background tasks for the order delivery
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance operations.
//
// # Available Jobs
//
// 1. ProofCleanupJob - Periodically removes proof images that no database
// record references. Orphans appear when an upload writes its blob but the
// subsequent transaction fails.
//
// 2. StaleOrderReportJob - Periodically reports orders that have sat in
// PENDING longer than a configured age, so operators notice orders nobody
// picked up.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(proofCleanupJob, staleOrderReportJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs log failures and keep the schedule; a failed run never stops the
// job. A failed job start stops any already running jobs.
package jobs
