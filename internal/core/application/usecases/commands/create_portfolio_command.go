package commands

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/domain/model/portfolio"
	"concierge/internal/pkg/guard"
)

var (
	ErrCreatePortfolioCommandIsNotConstructed = errors.New(
		"CreatePortfolioCommand must be created via NewCreatePortfolioCommand constructor",
	)
)

// CreatePortfolioCommand represents a request to create a property portfolio.
type CreatePortfolioCommand struct { //nolint:recvcheck //using for validation
	portfolioID   kernel.UUID
	orgID         kernel.UUID
	name          string
	propertyCount int
	actorRef      string

	guard guard.ConstructorGuard
}

// NewCreatePortfolioCommand creates a command to register a portfolio.
func NewCreatePortfolioCommand(
	portfolioID kernel.UUID,
	orgID kernel.UUID,
	name string,
	propertyCount int,
	actorRef string,
) (CreatePortfolioCommand, error) {
	cmd := CreatePortfolioCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPortfolioID(portfolioID),
		cmd.setOrgID(orgID),
		cmd.setName(name),
		cmd.setPropertyCount(propertyCount),
		cmd.setActorRef(actorRef),
	); err != nil {
		return CreatePortfolioCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePortfolioCommand) Validate() error {
	return c.guard.Validate(ErrCreatePortfolioCommandIsNotConstructed)
}

// PortfolioID returns the identifier for the new portfolio.
func (c CreatePortfolioCommand) PortfolioID() kernel.UUID {
	return c.portfolioID
}

// OrgID returns the acting organization's identifier.
func (c CreatePortfolioCommand) OrgID() kernel.UUID {
	return c.orgID
}

// Name returns the portfolio name.
func (c CreatePortfolioCommand) Name() string {
	return c.name
}

// PropertyCount returns the number of properties under management.
func (c CreatePortfolioCommand) PropertyCount() int {
	return c.propertyCount
}

// ActorRef returns the acting principal's reference.
func (c CreatePortfolioCommand) ActorRef() string {
	return c.actorRef
}

func (c *CreatePortfolioCommand) setPortfolioID(portfolioID kernel.UUID) error {
	if err := portfolioID.Validate(); err != nil {
		return err
	}
	c.portfolioID = portfolioID
	return nil
}

func (c *CreatePortfolioCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreatePortfolioCommand) setName(name string) error {
	if name == "" {
		return portfolio.ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreatePortfolioCommand) setPropertyCount(count int) error {
	if count < 0 {
		return portfolio.ErrPropertyCountIsInvalid
	}
	c.propertyCount = count
	return nil
}

func (c *CreatePortfolioCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
