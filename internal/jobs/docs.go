// Package jobs provides scheduled background tasks for the work order
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PricelistRefreshJob - Periodically reloads the in-memory price catalog
// from the price list service so article lookups keep serving current
// prices.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(catalog, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed reload keeps the previous cache contents, so refresh errors are
// logged and the job keeps running.
package jobs
