package commands

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrDeleteVendorContextCommandIsNotConstructed = errors.New(
		"DeleteVendorContextCommand must be created via NewDeleteVendorContextCommand constructor",
	)
)

// DeleteVendorContextCommand represents a request to soft-delete the vendor
// context attached to a case.
type DeleteVendorContextCommand struct { //nolint:recvcheck //using for validation
	caseID   kernel.UUID
	orgID    kernel.UUID
	actorRef string

	guard guard.ConstructorGuard
}

// NewDeleteVendorContextCommand creates a command to remove a case's vendor
// context.
func NewDeleteVendorContextCommand(caseID, orgID kernel.UUID, actorRef string) (DeleteVendorContextCommand, error) {
	cmd := DeleteVendorContextCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setOrgID(orgID),
		cmd.setActorRef(actorRef),
	); err != nil {
		return DeleteVendorContextCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteVendorContextCommand) Validate() error {
	return c.guard.Validate(ErrDeleteVendorContextCommandIsNotConstructed)
}

// CaseID returns the owning case's identifier.
func (c DeleteVendorContextCommand) CaseID() kernel.UUID {
	return c.caseID
}

// OrgID returns the acting organization's identifier.
func (c DeleteVendorContextCommand) OrgID() kernel.UUID {
	return c.orgID
}

// ActorRef returns the acting principal's reference.
func (c DeleteVendorContextCommand) ActorRef() string {
	return c.actorRef
}

func (c *DeleteVendorContextCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *DeleteVendorContextCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *DeleteVendorContextCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
