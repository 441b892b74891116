package commands

import (
	"errors"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrUpdateCaseCommandIsNotConstructed = errors.New(
		"UpdateCaseCommand must be created via NewUpdateCaseCommand constructor",
	)
)

// UpdateCaseCommand represents a request to change the mutable details of a
// case. Status is never changed through this command; that goes through
// ChangeCaseStatusCommand so the transition rules and history apply.
type UpdateCaseCommand struct { //nolint:recvcheck //using for validation
	caseID      kernel.UUID
	orgID       kernel.UUID
	title       string
	summary     string
	priority    concase.Priority
	assigneeRef string
	tags        []string
	actorRef    string

	guard guard.ConstructorGuard
}

// NewUpdateCaseCommand creates a command to update a case's details.
func NewUpdateCaseCommand(
	caseID kernel.UUID,
	orgID kernel.UUID,
	title string,
	summary string,
	priority concase.Priority,
	assigneeRef string,
	tags []string,
	actorRef string,
) (UpdateCaseCommand, error) {
	cmd := UpdateCaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setOrgID(orgID),
		cmd.setTitle(title),
		cmd.setPriority(priority),
		cmd.setActorRef(actorRef),
	); err != nil {
		return UpdateCaseCommand{}, err
	}

	cmd.summary = summary
	cmd.assigneeRef = assigneeRef
	cmd.tags = tags
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCaseCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCaseCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to update.
func (c UpdateCaseCommand) CaseID() kernel.UUID {
	return c.caseID
}

// OrgID returns the acting organization's identifier.
func (c UpdateCaseCommand) OrgID() kernel.UUID {
	return c.orgID
}

// Title returns the new title.
func (c UpdateCaseCommand) Title() string {
	return c.title
}

// Summary returns the new summary.
func (c UpdateCaseCommand) Summary() string {
	return c.summary
}

// Priority returns the new priority.
func (c UpdateCaseCommand) Priority() concase.Priority {
	return c.priority
}

// AssigneeRef returns the new assignee reference, empty to unassign.
func (c UpdateCaseCommand) AssigneeRef() string {
	return c.assigneeRef
}

// Tags returns the new tag set.
func (c UpdateCaseCommand) Tags() []string {
	return c.tags
}

// ActorRef returns the acting principal's reference.
func (c UpdateCaseCommand) ActorRef() string {
	return c.actorRef
}

func (c *UpdateCaseCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *UpdateCaseCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *UpdateCaseCommand) setTitle(title string) error {
	if title == "" {
		return concase.ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *UpdateCaseCommand) setPriority(priority concase.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *UpdateCaseCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
