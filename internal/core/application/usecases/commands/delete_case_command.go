package commands

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrDeleteCaseCommandIsNotConstructed = errors.New(
		"DeleteCaseCommand must be created via NewDeleteCaseCommand constructor",
	)
)

// DeleteCaseCommand represents a request to soft-delete a case. The row is
// retained with a deletion timestamp; history and activity stay readable for
// audit.
type DeleteCaseCommand struct { //nolint:recvcheck //using for validation
	caseID   kernel.UUID
	orgID    kernel.UUID
	actorRef string

	guard guard.ConstructorGuard
}

// NewDeleteCaseCommand creates a command to soft-delete a case.
func NewDeleteCaseCommand(caseID, orgID kernel.UUID, actorRef string) (DeleteCaseCommand, error) {
	cmd := DeleteCaseCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setOrgID(orgID),
		cmd.setActorRef(actorRef),
	); err != nil {
		return DeleteCaseCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCaseCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCaseCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to delete.
func (c DeleteCaseCommand) CaseID() kernel.UUID {
	return c.caseID
}

// OrgID returns the acting organization's identifier.
func (c DeleteCaseCommand) OrgID() kernel.UUID {
	return c.orgID
}

// ActorRef returns the acting principal's reference.
func (c DeleteCaseCommand) ActorRef() string {
	return c.actorRef
}

func (c *DeleteCaseCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *DeleteCaseCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *DeleteCaseCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
