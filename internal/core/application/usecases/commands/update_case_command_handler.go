package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/ports"
)

// UpdateCaseCommandHandler handles detail updates on an existing case.
// The aggregate rejects updates on cases in a terminal status.
type UpdateCaseCommandHandler struct {
	uowFactory CaseUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewUpdateCaseCommandHandler creates a handler for case update operations.
func NewUpdateCaseCommandHandler(uowFactory CaseUoWFactory, authorizer ports.PolicyAuthorizer) UpdateCaseCommandHandler {
	return UpdateCaseCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the case update command.
func (h *UpdateCaseCommandHandler) Handle(ctx context.Context, cmd UpdateCaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "case.update",
		Resource: "case/" + cmd.CaseID().String(),
		OrgID:    cmd.OrgID().String(),
	}); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.SetTenant(ctx, cmd.OrgID()); err != nil {
		return err
	}

	caseRepo := uow.CaseRepository()
	aggregate, err := caseRepo.Get(ctx, cmd.OrgID(), cmd.CaseID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateDetails(
		cmd.Title(), cmd.Summary(), cmd.Priority(), cmd.AssigneeRef(), cmd.Tags(),
	); err != nil {
		return err
	}

	if err = caseRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityCase, aggregate.ID(), "case.updated", cmd.ActorRef(),
		map[string]any{"priority": aggregate.Priority().String()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
