package jobs

import (
	"context"
	"log/slog"

	"steelflow/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ExecutionTrackingJob manages the scheduled tracking of running work orders.
// Runs every second to compute progress snapshots for InProgress orders.
type ExecutionTrackingJob struct {
	handler commands.TrackExecutionCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewExecutionTrackingJob creates a new job for tracking work-order execution.
// Uses TrackExecutionCommandHandler to snapshot running orders every second.
func NewExecutionTrackingJob(handler commands.TrackExecutionCommandHandler, logger *slog.Logger) *ExecutionTrackingJob {
	return &ExecutionTrackingJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "execution_tracking_job"),
	}
}

// Start begins the execution tracking job to run every second.
func (j *ExecutionTrackingJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewTrackExecutionCommand()

		snapshots, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Execution tracking pass failed", "error", err)
			return
		}

		for _, snapshot := range snapshots {
			j.logger.DebugContext(ctx, "Work order progress",
				"workOrderId", snapshot.WorkOrderID.String(),
				"tagNumber", snapshot.TagNumber,
				"percent", snapshot.Progress.Percent,
				"processedLbs", snapshot.Progress.ProcessedLbs,
				"rateLbsPerHour", snapshot.Progress.RateLbsPerHour,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Execution tracking job started (running every second)")
	return nil
}

// Stop stops the execution tracking job.
func (j *ExecutionTrackingJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Execution tracking job stopped")
}
