// Package jobs provides scheduled background tasks for the governance service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field expressions with
// seconds) and are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(overloadedHandler, "0 */15 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Available Jobs
//
// WorkloadAuditJob counts active design jobs per designer and active work
// orders per manufacturer and logs a warning for every assignee above the
// limits that the design job and work order rule batteries enforce. It never
// changes data. A failed audit is logged and retried on the next tick.
package jobs
