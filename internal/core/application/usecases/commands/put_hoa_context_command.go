package commands

import (
	"errors"

	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrPutHOAContextCommandIsNotConstructed = errors.New(
		"PutHOAContextCommand must be created via NewPutHOAContextCommand constructor",
	)
)

// PutHOAContextCommand represents an upsert of the HOA context attached to
// a case.
type PutHOAContextCommand struct { //nolint:recvcheck //using for validation
	caseID            kernel.UUID
	orgID             kernel.UUID
	hoaRef            string
	managementCompany string
	approvalRequired  bool
	notes             string
	actorRef          string

	guard guard.ConstructorGuard
}

// NewPutHOAContextCommand creates a command to upsert a case's HOA context.
func NewPutHOAContextCommand(
	caseID kernel.UUID,
	orgID kernel.UUID,
	hoaRef string,
	managementCompany string,
	approvalRequired bool,
	notes string,
	actorRef string,
) (PutHOAContextCommand, error) {
	cmd := PutHOAContextCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setOrgID(orgID),
		cmd.setHOARef(hoaRef),
		cmd.setActorRef(actorRef),
	); err != nil {
		return PutHOAContextCommand{}, err
	}

	cmd.managementCompany = managementCompany
	cmd.approvalRequired = approvalRequired
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PutHOAContextCommand) Validate() error {
	return c.guard.Validate(ErrPutHOAContextCommandIsNotConstructed)
}

// CaseID returns the owning case's identifier.
func (c PutHOAContextCommand) CaseID() kernel.UUID {
	return c.caseID
}

// OrgID returns the acting organization's identifier.
func (c PutHOAContextCommand) OrgID() kernel.UUID {
	return c.orgID
}

// HOARef returns the HOA reference.
func (c PutHOAContextCommand) HOARef() string {
	return c.hoaRef
}

// ManagementCompany returns the HOA's management company name.
func (c PutHOAContextCommand) ManagementCompany() string {
	return c.managementCompany
}

// ApprovalRequired reports whether HOA approval gates the work.
func (c PutHOAContextCommand) ApprovalRequired() bool {
	return c.approvalRequired
}

// Notes returns the free-form notes.
func (c PutHOAContextCommand) Notes() string {
	return c.notes
}

// ActorRef returns the acting principal's reference.
func (c PutHOAContextCommand) ActorRef() string {
	return c.actorRef
}

func (c *PutHOAContextCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *PutHOAContextCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *PutHOAContextCommand) setHOARef(hoaRef string) error {
	if hoaRef == "" {
		return extcontext.ErrHOARefIsRequired
	}
	c.hoaRef = hoaRef
	return nil
}

func (c *PutHOAContextCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
