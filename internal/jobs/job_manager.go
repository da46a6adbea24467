package jobs

import (
	"fmt"
	"log/slog"

	"bistro/internal/core/application/usecases/commands"
)

// JobManager owns every scheduled job the service runs and gives the
// composition root a single start/stop switch for all of them.
type JobManager struct {
	fulfillmentJob *FulfillmentJob
}

// NewJobManager wires the background jobs to their command handlers.
// The fulfillment schedule is a cron expression with a seconds field.
func NewJobManager(
	processOrdersHandler commands.ProcessOrdersCommandHandler,
	fulfillmentSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		fulfillmentJob: NewFulfillmentJob(processOrdersHandler, fulfillmentSchedule, logger),
	}
}

// StartAll brings up every scheduled job, failing fast on the first
// job that cannot start.
func (jm *JobManager) StartAll() error {
	if err := jm.fulfillmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start fulfillment job: %w", err)
	}

	return nil
}

// StopAll shuts the jobs down and waits for in-flight runs to finish.
func (jm *JobManager) StopAll() {
	jm.fulfillmentJob.Stop()
}
