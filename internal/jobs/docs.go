// Package jobs provides scheduled background tasks for the batching plant.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic operations that run alongside the request-driven engine.
//
// # Available Jobs
//
// 1. ProductionSnapshotJob - Runs every thirty seconds to log plant activity
// (order counts by status and open volume) through the query side.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getAllOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The snapshot job is read-only and never mutates production state; a failed
// snapshot is logged and retried on the next tick.
package jobs
