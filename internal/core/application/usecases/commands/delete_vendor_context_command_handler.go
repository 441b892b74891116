package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/ports"
)

// DeleteVendorContextCommandHandler soft-deletes a case's vendor context.
// Deleting a context that does not exist reports not-found, as does any
// cross-org attempt.
type DeleteVendorContextCommandHandler struct {
	uowFactory ExtContextUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewDeleteVendorContextCommandHandler creates a handler for vendor context
// deletion.
func NewDeleteVendorContextCommandHandler(uowFactory ExtContextUoWFactory, authorizer ports.PolicyAuthorizer) DeleteVendorContextCommandHandler {
	return DeleteVendorContextCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the vendor context deletion command.
func (h *DeleteVendorContextCommandHandler) Handle(ctx context.Context, cmd DeleteVendorContextCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "context.delete",
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

	extRepo := uow.ExtContextRepository()
	existing, err := extRepo.GetVendorContext(ctx, cmd.OrgID(), cmd.CaseID())
	if err != nil {
		return err
	}

	if err = extRepo.DeleteVendorContext(ctx, cmd.OrgID(), cmd.CaseID()); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityVendorCtx, cmd.CaseID(), "vendor_context.deleted", cmd.ActorRef(),
		map[string]any{"vendor_ref": existing.VendorRef()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
