// Package jobs provides scheduled background tasks for the kitchen service.
//
// Jobs run on cron schedules via github.com/robfig/cron/v3 and cover the
// periodic work the kitchen needs, chiefly draining the order queue.
//
// # Available Jobs
//
// 1. FulfillmentJob - Runs on a configurable schedule (every five seconds by
// default) to work the order queue: each pass tries every pending ticket
// against the stations, tops stations up from the backup pool when stock
// falls short, and requeues tickets nothing could prepare.
//
// # Usage
//
// The composition root drives every job through JobManager:
//
//	jobManager := jobs.NewJobManager(processOrdersHandler, "*/5 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("starting jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The fulfillment job takes a six-field cron expression with a seconds
// column. The composition root reads it from configuration, so deployments
// can tune how aggressively the queue is drained.
//
// # Error Handling
//
// - The fulfillment job ignores the expected business-empty case (no pending orders)
// - Every other error is logged, the job keeps its schedule
// - Failed job starts stop any already running jobs
package jobs
