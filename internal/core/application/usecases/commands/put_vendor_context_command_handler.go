package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/ports"
)

// PutVendorContextCommandHandler upserts the vendor context on a case.
type PutVendorContextCommandHandler struct {
	uowFactory ExtContextUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewPutVendorContextCommandHandler creates a handler for vendor context
// upserts.
func NewPutVendorContextCommandHandler(uowFactory ExtContextUoWFactory, authorizer ports.PolicyAuthorizer) PutVendorContextCommandHandler {
	return PutVendorContextCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the vendor context upsert command.
func (h *PutVendorContextCommandHandler) Handle(ctx context.Context, cmd PutVendorContextCommand) error {
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

	aggregate, err := extcontext.NewVendorContext(
		kernel.NewUUID(),
		cmd.OrgID(),
		owner.ID(),
		cmd.VendorRef(),
		cmd.Trades(),
		cmd.ContactEmail(),
		cmd.Notes(),
	)
	if err != nil {
		return err
	}

	if err = uow.ExtContextRepository().PutVendorContext(ctx, aggregate); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityVendorCtx, owner.ID(), "vendor_context.put", cmd.ActorRef(),
		map[string]any{"vendor_ref": cmd.VendorRef()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
