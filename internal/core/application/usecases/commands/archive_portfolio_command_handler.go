package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/ports"
)

// ArchivePortfolioCommandHandler archives a portfolio. Archiving twice is a
// conflict, reported by the aggregate.
type ArchivePortfolioCommandHandler struct {
	uowFactory PortfolioUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewArchivePortfolioCommandHandler creates a handler for portfolio archival.
func NewArchivePortfolioCommandHandler(uowFactory PortfolioUoWFactory, authorizer ports.PolicyAuthorizer) ArchivePortfolioCommandHandler {
	return ArchivePortfolioCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the portfolio archive command.
func (h *ArchivePortfolioCommandHandler) Handle(ctx context.Context, cmd ArchivePortfolioCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "portfolio.archive",
		Resource: "portfolio/" + cmd.PortfolioID().String(),
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

	pfRepo := uow.PortfolioRepository()
	aggregate, err := pfRepo.Get(ctx, cmd.OrgID(), cmd.PortfolioID())
	if err != nil {
		return err
	}

	if err = aggregate.Archive(); err != nil {
		return err
	}

	if err = pfRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityPortfolio, aggregate.ID(), "portfolio.archived", cmd.ActorRef(), nil,
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
