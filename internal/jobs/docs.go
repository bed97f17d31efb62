// Package jobs provides the scheduled background tasks of the serve mode.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. ShipmentConfirmationJob - Runs the shipment confirmation on a configurable
// schedule (six-field cron expression, seconds first)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(handler, cfg.Schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Overlapping runs
//
// At most one run is in flight at a time. A scheduled tick that fires while a
// run is still going is skipped, and a manual trigger gets ErrRunInProgress.
//
// # Error Handling
//
// - Aborted runs (fetch failure, crash) are logged; the handler has already
// sent the critical notification
// - Failed job starts will stop any already running jobs
package jobs
