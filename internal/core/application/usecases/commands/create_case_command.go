package commands

import (
	"errors"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrCreateCaseCommandIsNotConstructed = errors.New(
		"CreateCaseCommand must be created via NewCreateCaseCommand constructor",
	)
)

// CreateCaseCommand represents a request to open a new concierge case.
// The case starts in INTAKE status and records its creation history entry
// and activity row in the same transaction.
type CreateCaseCommand struct { //nolint:recvcheck //using for validation
	caseID      kernel.UUID
	orgID       kernel.UUID
	portfolioID kernel.UUID
	propertyRef string
	title       string
	summary     string
	priority    concase.Priority
	actorRef    string

	guard guard.ConstructorGuard
}

// NewCreateCaseCommand creates a command to open a new case. Identifier,
// title, property reference, and priority validation happens here; the
// portfolio's existence is checked by the handler inside the transaction.
func NewCreateCaseCommand(
	caseID kernel.UUID,
	orgID kernel.UUID,
	portfolioID kernel.UUID,
	propertyRef string,
	title string,
	summary string,
	priority concase.Priority,
	actorRef string,
) (CreateCaseCommand, error) {
	cmd := CreateCaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setOrgID(orgID),
		cmd.setPortfolioID(portfolioID),
		cmd.setPropertyRef(propertyRef),
		cmd.setTitle(title),
		cmd.setPriority(priority),
		cmd.setActorRef(actorRef),
	); err != nil {
		return CreateCaseCommand{}, err
	}

	cmd.summary = summary
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCaseCommand) Validate() error {
	return c.guard.Validate(ErrCreateCaseCommandIsNotConstructed)
}

// CaseID returns the identifier for the new case.
func (c CreateCaseCommand) CaseID() kernel.UUID {
	return c.caseID
}

// OrgID returns the acting organization's identifier.
func (c CreateCaseCommand) OrgID() kernel.UUID {
	return c.orgID
}

// PortfolioID returns the portfolio the case is filed under.
func (c CreateCaseCommand) PortfolioID() kernel.UUID {
	return c.portfolioID
}

// PropertyRef returns the property reference.
func (c CreateCaseCommand) PropertyRef() string {
	return c.propertyRef
}

// Title returns the case title.
func (c CreateCaseCommand) Title() string {
	return c.title
}

// Summary returns the case summary.
func (c CreateCaseCommand) Summary() string {
	return c.summary
}

// Priority returns the case priority.
func (c CreateCaseCommand) Priority() concase.Priority {
	return c.priority
}

// ActorRef returns the acting principal's reference.
func (c CreateCaseCommand) ActorRef() string {
	return c.actorRef
}

func (c *CreateCaseCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *CreateCaseCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreateCaseCommand) setPortfolioID(portfolioID kernel.UUID) error {
	if err := portfolioID.Validate(); err != nil {
		return err
	}
	c.portfolioID = portfolioID
	return nil
}

func (c *CreateCaseCommand) setPropertyRef(propertyRef string) error {
	if propertyRef == "" {
		return concase.ErrPropertyRefIsRequired
	}
	c.propertyRef = propertyRef
	return nil
}

func (c *CreateCaseCommand) setTitle(title string) error {
	if title == "" {
		return concase.ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *CreateCaseCommand) setPriority(priority concase.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *CreateCaseCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
