package commands

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrArchivePortfolioCommandIsNotConstructed = errors.New(
		"ArchivePortfolioCommand must be created via NewArchivePortfolioCommand constructor",
	)
)

// ArchivePortfolioCommand represents a request to archive a portfolio.
// Archiving is a soft delete; existing cases keep their portfolio reference
// but no new cases can be filed under an archived portfolio.
type ArchivePortfolioCommand struct { //nolint:recvcheck //using for validation
	portfolioID kernel.UUID
	orgID       kernel.UUID
	actorRef    string

	guard guard.ConstructorGuard
}

// NewArchivePortfolioCommand creates a command to archive a portfolio.
func NewArchivePortfolioCommand(portfolioID, orgID kernel.UUID, actorRef string) (ArchivePortfolioCommand, error) {
	cmd := ArchivePortfolioCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPortfolioID(portfolioID),
		cmd.setOrgID(orgID),
		cmd.setActorRef(actorRef),
	); err != nil {
		return ArchivePortfolioCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchivePortfolioCommand) Validate() error {
	return c.guard.Validate(ErrArchivePortfolioCommandIsNotConstructed)
}

// PortfolioID returns the identifier of the portfolio to archive.
func (c ArchivePortfolioCommand) PortfolioID() kernel.UUID {
	return c.portfolioID
}

// OrgID returns the acting organization's identifier.
func (c ArchivePortfolioCommand) OrgID() kernel.UUID {
	return c.orgID
}

// ActorRef returns the acting principal's reference.
func (c ArchivePortfolioCommand) ActorRef() string {
	return c.actorRef
}

func (c *ArchivePortfolioCommand) setPortfolioID(portfolioID kernel.UUID) error {
	if err := portfolioID.Validate(); err != nil {
		return err
	}
	c.portfolioID = portfolioID
	return nil
}

func (c *ArchivePortfolioCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ArchivePortfolioCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
