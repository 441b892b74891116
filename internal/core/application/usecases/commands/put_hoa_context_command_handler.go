package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/ports"
)

// PutHOAContextCommandHandler upserts the HOA context on a case.
type PutHOAContextCommandHandler struct {
	uowFactory ExtContextUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewPutHOAContextCommandHandler creates a handler for HOA context upserts.
func NewPutHOAContextCommandHandler(uowFactory ExtContextUoWFactory, authorizer ports.PolicyAuthorizer) PutHOAContextCommandHandler {
	return PutHOAContextCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the HOA context upsert command.
func (h *PutHOAContextCommandHandler) Handle(ctx context.Context, cmd PutHOAContextCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "context.put",
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

	aggregate, err := extcontext.NewHOAContext(
		kernel.NewUUID(),
		cmd.OrgID(),
		owner.ID(),
		cmd.HOARef(),
		cmd.ManagementCompany(),
		cmd.ApprovalRequired(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.ExtContextRepository().PutHOAContext(ctx, aggregate); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityHOACtx, owner.ID(), "hoa_context.put", cmd.ActorRef(),
		map[string]any{"hoa_ref": cmd.HOARef()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
