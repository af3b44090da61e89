// Package jobs provides scheduled background tasks for the coffee shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// (with the seconds field enabled).
//
// # Available Jobs
//
// 1. RushJob - submits a generated batch of orders on RUSH_SCHEDULE
// 2. StockReportJob - logs the remaining stock and revenue on REPORT_SCHEDULE
//
// # Usage
//
//	jobManager := jobs.NewJobManager(rushJob, stockReportJob)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A rush that runs past its next tick skips that tick instead of overlapping
// - Failed job starts will stop any already running jobs
package jobs
