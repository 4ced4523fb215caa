// Package jobs provides scheduled background tasks for the laundry admin
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations behind the dashboard.
//
// # Available Jobs
//
// 1. StatsRefreshJob - Recomputes the dashboard counters on a fixed
// interval and stores the snapshot in the cache
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(statsHandler, statsCache, 5*time.Second, 30*time.Second, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The refresh job runs on an @every schedule derived from the configured
// interval. Runs never overlap: when an aggregation is still in flight the
// next tick is skipped.
//
// # Error Handling
//
// A failed aggregation or cache write is logged and the previous snapshot
// keeps serving until the next successful run.
package jobs
