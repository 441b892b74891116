package commands

import (
	"context"
	"errors"
	"time"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/kernel"
)

// reminderActorRef identifies the scheduler on reminder activity rows.
const reminderActorRef = "system/owner-reminder"

// StaleOwnerCase is a case parked on the owner past the reminder deadline.
type StaleOwnerCase struct {
	CaseID kernel.UUID
	OrgID  kernel.UUID
}

// StaleOwnerCaseFinder lists cases in PENDING_OWNER that have not moved
// since the given instant. The sweep crosses organizations, so it runs
// outside any tenant-scoped transaction.
type StaleOwnerCaseFinder interface {
	FindStaleOwnerCases(ctx context.Context, updatedBefore time.Time) ([]StaleOwnerCase, error)
}

// SendOwnerRemindersCommandHandler records reminder activity for cases
// that have been waiting on the owner too long. Writes are grouped into one
// tenant-scoped transaction per organization; a failing organization does
// not block the others. The job schedule bounds how often a still-stale
// case is reminded again.
type SendOwnerRemindersCommandHandler struct {
	uowFactory OwnerReminderUoWFactory
	finder     StaleOwnerCaseFinder
}

// NewSendOwnerRemindersCommandHandler creates a handler for the reminder
// sweep.
func NewSendOwnerRemindersCommandHandler(uowFactory OwnerReminderUoWFactory, finder StaleOwnerCaseFinder) SendOwnerRemindersCommandHandler {
	return SendOwnerRemindersCommandHandler{
		uowFactory: uowFactory,
		finder:     finder,
	}
}

// Handle processes the reminder sweep command.
func (h *SendOwnerRemindersCommandHandler) Handle(ctx context.Context, cmd SendOwnerRemindersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	deadline := time.Now().UTC().Add(-cmd.StaleAfter())
	stale, err := h.finder.FindStaleOwnerCases(ctx, deadline)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	byOrg := make(map[kernel.UUID][]kernel.UUID)
	for _, s := range stale {
		byOrg[s.OrgID] = append(byOrg[s.OrgID], s.CaseID)
	}

	var sweepErrs []error
	for orgID, caseIDs := range byOrg {
		if err = h.remindOrg(ctx, orgID, caseIDs, cmd.StaleAfter()); err != nil {
			sweepErrs = append(sweepErrs, err)
		}
	}
	return errors.Join(sweepErrs...)
}

func (h *SendOwnerRemindersCommandHandler) remindOrg(
	ctx context.Context, orgID kernel.UUID, caseIDs []kernel.UUID, staleAfter time.Duration,
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SetTenant(ctx, orgID); err != nil {
		return err
	}

	activityRepo := uow.ActivityRepository()
	for _, caseID := range caseIDs {
		entry, err := activity.NewEntry(
			orgID, activity.EntityCase, caseID, "case.owner_reminder", reminderActorRef,
			map[string]any{"stale_after": staleAfter.String()},
		)
		if err != nil {
			return err
		}
		if err = activityRepo.Record(ctx, entry); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
