package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderdelivery/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// Defaults for the stale-order report: hourly, flagging orders that have
// waited in PENDING for more than a day.
const (
	DefaultStaleOrderSchedule = "0 * * * *"
	DefaultStaleOrderMaxAge   = 24 * time.Hour
)

// StaleOrderReportJob periodically logs orders stuck in PENDING longer than
// the configured age so operators notice orders nobody picked up.
type StaleOrderReportJob struct {
	handler  queries.GetStalePendingOrdersQueryHandler
	schedule string
	maxAge   time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStaleOrderReportJob creates a job that reports stale pending orders on
// the given cron schedule.
func NewStaleOrderReportJob(
	handler queries.GetStalePendingOrdersQueryHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *StaleOrderReportJob {
	if schedule == "" {
		schedule = DefaultStaleOrderSchedule
	}
	if maxAge <= 0 {
		maxAge = DefaultStaleOrderMaxAge
	}

	return &StaleOrderReportJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		cron:     cron.New(),
		logger:   logger.With("component", "stale_order_report_job"),
	}
}

// Start schedules the report.
func (j *StaleOrderReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		query, err := queries.NewGetStalePendingOrdersQuery(time.Now().Add(-j.maxAge))
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order report job failed", "error", err)
			return
		}

		stale, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale order report job failed", "error", err)
			return
		}

		for _, o := range stale {
			j.logger.WarnContext(ctx, "Order has been pending too long",
				"orderId", o.ID,
				"userId", o.UserID,
				"createdAt", o.CreatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the job.
func (j *StaleOrderReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order report job stopped")
}
