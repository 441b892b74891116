package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/ports"
	"concierge/internal/pkg/errs"
)

// CreateCaseCommandHandler handles the business logic for opening a case.
// It verifies the target portfolio exists and is not archived, persists the
// case in INTAKE status, and writes the initial history entry and the
// activity row in the same transaction.
//
// Example:
//
//	handler := NewCreateCaseCommandHandler(uowFactory, authorizer)
//	cmd, _ := commands.NewCreateCaseCommand(
//	    kernel.NewUUID(), orgID, portfolioID,
//	    "prop-184", "Leaking irrigation line", "", concase.PriorityHigh, "user:ana",
//	)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to open case: %w", err)
//	}
type CreateCaseCommandHandler struct {
	uowFactory CaseUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewCreateCaseCommandHandler creates a handler for case creation operations.
func NewCreateCaseCommandHandler(uowFactory CaseUoWFactory, authorizer ports.PolicyAuthorizer) CreateCaseCommandHandler {
	return CreateCaseCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the case creation command.
func (h *CreateCaseCommandHandler) Handle(ctx context.Context, cmd CreateCaseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "case.create",
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

	pf, err := uow.PortfolioRepository().Get(ctx, cmd.OrgID(), cmd.PortfolioID())
	if err != nil {
		return err
	}
	if pf.IsArchived() {
		return errs.NewConflictError("portfolio is archived")
	}

	aggregate, err := concase.NewCase(
		cmd.CaseID(),
		cmd.OrgID(),
		cmd.PortfolioID(),
		cmd.PropertyRef(),
		cmd.Title(),
		cmd.Summary(),
		cmd.Priority(),
	)
	if err != nil {
		return err
	}

	caseRepo := uow.CaseRepository()
	if err = caseRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	historyEntry, err := concase.NewCreationHistoryEntry(aggregate.ID(), cmd.ActorRef())
	if err != nil {
		return err
	}
	if err = caseRepo.AddHistoryEntry(ctx, historyEntry); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityCase, aggregate.ID(), "case.created", cmd.ActorRef(),
		map[string]any{"status": aggregate.Status().String(), "portfolio_id": cmd.PortfolioID().String()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
