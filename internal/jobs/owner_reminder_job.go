package jobs

import (
	"context"
	"log/slog"
	"time"

	"concierge/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// ownerReminderSchedule runs the sweep at the top of every hour. Reminders
// repeat each run while a case stays stale, so the schedule is also the
// reminder cadence.
const ownerReminderSchedule = "0 0 * * * *"

// OwnerReminderJob periodically nudges owners whose cases are waiting on
// them. Each run sweeps PENDING_OWNER cases untouched for the stale window
// and records a reminder activity row per case.
type OwnerReminderJob struct {
	handler    commands.SendOwnerRemindersCommandHandler
	staleAfter time.Duration
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOwnerReminderJob creates a job that reminds owners about stale cases.
func NewOwnerReminderJob(
	handler commands.SendOwnerRemindersCommandHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *OwnerReminderJob {
	return &OwnerReminderJob{
		handler:    handler,
		staleAfter: staleAfter,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "owner_reminder_job"),
	}
}

// Start schedules the hourly reminder sweep.
func (j *OwnerReminderJob) Start() error {
	_, err := j.cron.AddFunc(ownerReminderSchedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewSendOwnerRemindersCommand(j.staleAfter)
		if err != nil {
			j.logger.ErrorContext(ctx, "Owner reminder job misconfigured", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Owner reminder sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Owner reminder job started (running hourly)",
		"stale_after", j.staleAfter.String())
	return nil
}

// Stop stops the reminder job.
func (j *OwnerReminderJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Owner reminder job stopped")
}
