package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"concierge/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	ownerReminderJob *OwnerReminderJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	sendOwnerRemindersHandler commands.SendOwnerRemindersCommandHandler,
	ownerReminderStaleAfter time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		ownerReminderJob: NewOwnerReminderJob(sendOwnerRemindersHandler, ownerReminderStaleAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.ownerReminderJob.Start(); err != nil {
		return fmt.Errorf("failed to start owner reminder job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.ownerReminderJob.Stop()
}
