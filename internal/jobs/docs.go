// Package jobs provides scheduled background tasks for the concierge
// backend.
//
// Jobs are cron-based, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OwnerReminderJob - Runs hourly to find cases parked in PENDING_OWNER
// past the configured stale window and record a reminder activity row for
// each.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(sendOwnerRemindersHandler, staleWindow, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The reminder job logs failures and waits for the next tick; the sweep is
// idempotent enough that a missed run only delays reminders by one period.
package jobs
