package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/ports"
)

// DeleteCaseCommandHandler soft-deletes a case. The lookup before the delete
// keeps cross-org requests indistinguishable from deletes of absent cases.
type DeleteCaseCommandHandler struct {
	uowFactory CaseUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewDeleteCaseCommandHandler creates a handler for case deletion.
func NewDeleteCaseCommandHandler(uowFactory CaseUoWFactory, authorizer ports.PolicyAuthorizer) DeleteCaseCommandHandler {
	return DeleteCaseCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the case deletion command.
func (h *DeleteCaseCommandHandler) Handle(ctx context.Context, cmd DeleteCaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "case.delete",
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

	if err = caseRepo.Delete(ctx, cmd.OrgID(), aggregate.ID()); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityCase, aggregate.ID(), "case.deleted", cmd.ActorRef(), nil,
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
