package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/ports"
)

// ChangeActionStatusCommandHandler moves an action through its lifecycle.
// The aggregate enforces the action transition table.
type ChangeActionStatusCommandHandler struct {
	uowFactory ActionUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewChangeActionStatusCommandHandler creates a handler for action status
// transitions.
func NewChangeActionStatusCommandHandler(uowFactory ActionUoWFactory, authorizer ports.PolicyAuthorizer) ChangeActionStatusCommandHandler {
	return ChangeActionStatusCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the action status transition command.
func (h *ChangeActionStatusCommandHandler) Handle(ctx context.Context, cmd ChangeActionStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "action.transition",
		Resource: "action/" + cmd.ActionID().String(),
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

	actionRepo := uow.ActionRepository()
	aggregate, err := actionRepo.Get(ctx, cmd.OrgID(), cmd.ActionID())
	if err != nil {
		return err
	}

	fromStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.TargetStatus()); err != nil {
		return err
	}

	if err = actionRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityAction, aggregate.ID(), "action.status_changed", cmd.ActorRef(),
		map[string]any{"from": fromStatus.String(), "to": aggregate.Status().String()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
