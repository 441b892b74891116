package commands

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrCreateActionCommandIsNotConstructed = errors.New(
		"CreateActionCommand must be created via NewCreateActionCommand constructor",
	)
)

// CreateActionCommand represents a request to plan a concrete work item
// under a case. Actions start in PLANNED status.
type CreateActionCommand struct { //nolint:recvcheck //using for validation
	actionID    kernel.UUID
	orgID       kernel.UUID
	caseID      kernel.UUID
	title       string
	detail      string
	assigneeRef string
	dueAt       *time.Time
	actorRef    string

	guard guard.ConstructorGuard
}

// NewCreateActionCommand creates a command to plan an action for a case.
func NewCreateActionCommand(
	actionID kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	title string,
	detail string,
	assigneeRef string,
	dueAt *time.Time,
	actorRef string,
) (CreateActionCommand, error) {
	cmd := CreateActionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActionID(actionID),
		cmd.setOrgID(orgID),
		cmd.setCaseID(caseID),
		cmd.setTitle(title),
		cmd.setActorRef(actorRef),
	); err != nil {
		return CreateActionCommand{}, err
	}

	cmd.detail = detail
	cmd.assigneeRef = assigneeRef
	cmd.dueAt = dueAt
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateActionCommand) Validate() error {
	return c.guard.Validate(ErrCreateActionCommandIsNotConstructed)
}

// ActionID returns the identifier for the new action.
func (c CreateActionCommand) ActionID() kernel.UUID {
	return c.actionID
}

// OrgID returns the acting organization's identifier.
func (c CreateActionCommand) OrgID() kernel.UUID {
	return c.orgID
}

// CaseID returns the owning case's identifier.
func (c CreateActionCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Title returns the action title.
func (c CreateActionCommand) Title() string {
	return c.title
}

// Detail returns the free-form action detail.
func (c CreateActionCommand) Detail() string {
	return c.detail
}

// AssigneeRef returns the assignee reference, empty when unassigned.
func (c CreateActionCommand) AssigneeRef() string {
	return c.assigneeRef
}

// DueAt returns the optional due timestamp.
func (c CreateActionCommand) DueAt() *time.Time {
	return c.dueAt
}

// ActorRef returns the acting principal's reference.
func (c CreateActionCommand) ActorRef() string {
	return c.actorRef
}

func (c *CreateActionCommand) setActionID(actionID kernel.UUID) error {
	if err := actionID.Validate(); err != nil {
		return err
	}
	c.actionID = actionID
	return nil
}

func (c *CreateActionCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *CreateActionCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *CreateActionCommand) setTitle(title string) error {
	if title == "" {
		return action.ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *CreateActionCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
