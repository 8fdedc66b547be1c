// Package jobs provides scheduled background tasks for the order lifecycle engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic hygiene work the lazy deadline model leaves behind.
//
// # Available Jobs
//
// 1. OfferSweepJob - Runs every fifteen seconds to delete expired, non-rejected driver offers
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(offerUoWFactory, clock, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Correctness
//
// The sweep is purely hygienic. Expired offers are already dead to the
// confirmation path (the handler checks the deadline itself), so a delayed or
// missed sweep never changes behavior, it only leaves stale rows around a
// little longer. Rejected offers are deliberately kept: suppliers may not
// re-offer an order to a driver who declined it, and that rule is enforced
// against the stored rejection row.
package jobs
