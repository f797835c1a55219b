// Package jobs provides scheduled background tasks for the work order service.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. StatusCountsReportJob - periodically logs how many orders sit in each status
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(statusCountsHandler, "0 */5 * * * *", logger)
//	if err != nil {
//		log.Fatal("Failed to create jobs:", err)
//	}
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report run is logged and the next tick runs normally.
// Failed job starts stop any already running jobs.
package jobs
