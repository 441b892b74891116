package commands

import (
	"context"

	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"
)

// CreateActionCommandHandler plans a new action under a case. The owning
// case is loaded in the same transaction; planning work under a closed or
// cancelled case is a conflict.
type CreateActionCommandHandler struct {
	uowFactory ActionUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewCreateActionCommandHandler creates a handler for action creation.
func NewCreateActionCommandHandler(uowFactory ActionUoWFactory, authorizer ports.PolicyAuthorizer) CreateActionCommandHandler {
	return CreateActionCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the action creation command.
func (h *CreateActionCommandHandler) Handle(ctx context.Context, cmd CreateActionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "action.create",
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

	owner, err := uow.CaseRepository().Get(ctx, cmd.OrgID(), cmd.CaseID())
	if err != nil {
		return err
	}
	if owner.Status().IsTerminal() {
		return errs.NewConflictError("case is " + owner.Status().String())
	}

	aggregate, err := action.NewAction(
		cmd.ActionID(),
		cmd.OrgID(),
		cmd.CaseID(),
		cmd.Title(),
		cmd.Detail(),
		cmd.AssigneeRef(),
		cmd.DueAt(),
	)
	if err != nil {
		return err
	}

	if err = uow.ActionRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityAction, aggregate.ID(), "action.created", cmd.ActorRef(),
		map[string]any{"case_id": cmd.CaseID().String(), "status": aggregate.Status().String()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
