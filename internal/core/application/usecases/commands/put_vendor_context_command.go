package commands

import (
	"errors"

	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrPutVendorContextCommandIsNotConstructed = errors.New(
		"PutVendorContextCommand must be created via NewPutVendorContextCommand constructor",
	)
)

// PutVendorContextCommand represents an upsert of the vendor context
// attached to a case. A case holds at most one live vendor context; a second
// put replaces the first.
type PutVendorContextCommand struct { //nolint:recvcheck //using for validation
	caseID       kernel.UUID
	orgID        kernel.UUID
	vendorRef    string
	trades       []string
	contactEmail string
	notes        string
	actorRef     string

	guard guard.ConstructorGuard
}

// NewPutVendorContextCommand creates a command to upsert a case's vendor
// context.
func NewPutVendorContextCommand(
	caseID kernel.UUID,
	orgID kernel.UUID,
	vendorRef string,
	trades []string,
	contactEmail string,
	notes string,
	actorRef string,
) (PutVendorContextCommand, error) {
	cmd := PutVendorContextCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setOrgID(orgID),
		cmd.setVendorRef(vendorRef),
		cmd.setActorRef(actorRef),
	); err != nil {
		return PutVendorContextCommand{}, err
	}

	cmd.trades = trades
	cmd.contactEmail = contactEmail
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PutVendorContextCommand) Validate() error {
	return c.guard.Validate(ErrPutVendorContextCommandIsNotConstructed)
}

// CaseID returns the owning case's identifier.
func (c PutVendorContextCommand) CaseID() kernel.UUID {
	return c.caseID
}

// OrgID returns the acting organization's identifier.
func (c PutVendorContextCommand) OrgID() kernel.UUID {
	return c.orgID
}

// VendorRef returns the vendor reference.
func (c PutVendorContextCommand) VendorRef() string {
	return c.vendorRef
}

// Trades returns the vendor's trades.
func (c PutVendorContextCommand) Trades() []string {
	return c.trades
}

// ContactEmail returns the vendor contact email.
func (c PutVendorContextCommand) ContactEmail() string {
	return c.contactEmail
}

// Notes returns the free-form notes.
func (c PutVendorContextCommand) Notes() string {
	return c.notes
}

// ActorRef returns the acting principal's reference.
func (c PutVendorContextCommand) ActorRef() string {
	return c.actorRef
}

func (c *PutVendorContextCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *PutVendorContextCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *PutVendorContextCommand) setVendorRef(vendorRef string) error {
	if vendorRef == "" {
		return extcontext.ErrVendorRefIsRequired
	}
	c.vendorRef = vendorRef
	return nil
}

func (c *PutVendorContextCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
