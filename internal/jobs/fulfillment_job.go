package jobs

import (
	"context"
	"errors"
	"log/slog"

	"bistro/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// FulfillmentJob manages scheduled fulfillment passes over the order queue.
// Each pass works every pending ticket once, drawing on the backup pool
// when stations run short, and requeues whatever could not be prepared.
type FulfillmentJob struct {
	handler  commands.ProcessOrdersCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewFulfillmentJob creates a job that runs fulfillment passes on the given
// cron schedule. The schedule uses the six-field form with a seconds column,
// e.g. "*/5 * * * * *" for every five seconds.
func NewFulfillmentJob(
	handler commands.ProcessOrdersCommandHandler,
	schedule string,
	logger *slog.Logger,
) *FulfillmentJob {
	return &FulfillmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "fulfillment_job"),
	}
}

// Start begins the fulfillment job on its schedule.
func (j *FulfillmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewProcessOrdersCommand()

		result, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			// Only log errors that are not expected business scenarios
			if !errors.Is(err, commands.ErrNoPendingOrders) {
				j.logger.ErrorContext(ctx, "Fulfillment pass failed", "error", err)
			}
			return
		}

		j.logger.InfoContext(ctx, "Fulfillment pass completed",
			"fulfilled", result.Report.Fulfilled,
			"requeued", result.Report.Requeued,
			"elapsed", result.Report.Elapsed,
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Fulfillment job started", "schedule", j.schedule)
	return nil
}

// Stop halts the schedule and waits for an in-flight pass to finish.
func (j *FulfillmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Fulfillment job stopped")
}
