// Package jobs provides scheduled background tasks for the insurance system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the policyholder service.
//
// # Available Jobs
//
// 1. PolicyLapseJob - Runs daily at 02:00 to lapse Active policies whose end
// date has passed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(lapseHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The lapse sweep collects per-holder failures into one joined error and logs
// it; holders that failed are picked up again by the next run.
package jobs
