package commands

import (
	"context"

	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/portfolio"
	"concierge/internal/core/ports"
)

// CreatePortfolioCommandHandler handles portfolio creation.
type CreatePortfolioCommandHandler struct {
	uowFactory PortfolioUoWFactory
	authorizer ports.PolicyAuthorizer
}

// NewCreatePortfolioCommandHandler creates a handler for portfolio creation.
func NewCreatePortfolioCommandHandler(uowFactory PortfolioUoWFactory, authorizer ports.PolicyAuthorizer) CreatePortfolioCommandHandler {
	return CreatePortfolioCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

// Handle processes the portfolio creation command.
func (h *CreatePortfolioCommandHandler) Handle(ctx context.Context, cmd CreatePortfolioCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.authorizer.Authorize(ctx, ports.AuthzRequest{
		ActorRef: cmd.ActorRef(),
		Action:   "portfolio.create",
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

	aggregate, err := portfolio.NewPortfolio(cmd.PortfolioID(), cmd.OrgID(), cmd.Name(), cmd.PropertyCount())
	if err != nil {
		return err
	}

	if err = uow.PortfolioRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	entry, err := activity.NewEntry(
		cmd.OrgID(), activity.EntityPortfolio, aggregate.ID(), "portfolio.created", cmd.ActorRef(),
		map[string]any{"name": aggregate.Name()},
	)
	if err != nil {
		return err
	}
	if err = uow.ActivityRepository().Record(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
