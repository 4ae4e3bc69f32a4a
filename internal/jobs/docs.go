// Package jobs provides scheduled background tasks for the fulfillment engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the fulfillment service.
//
// # Available Jobs
//
// 1. OverdueShipmentJob - Runs every five minutes to flag undelivered shipments
// whose estimated delivery date passed more than a grace period ago.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(markOverdueHandler, 48*time.Hour, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Per-shipment failures inside a sweep do not abort the sweep
// - Failed job starts will stop any already running jobs
package jobs
