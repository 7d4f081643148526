// Package jobs provides scheduled background tasks for the tracking backend.
//
// Jobs run on github.com/robfig/cron/v3 schedules and are coordinated through
// JobManager:
//
//	jobManager := jobs.NewJobManager(archiveHandler, schedule, olderThan, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// The only job today is OrderArchivalJob, which archives orders left
// untouched in a non-terminal status beyond the configured threshold. It runs
// the same guarded archival command as any other caller, so each swept order
// gets its history entry and terminal statuses are never disturbed. Setting a
// non-positive threshold disables the sweep.
package jobs
