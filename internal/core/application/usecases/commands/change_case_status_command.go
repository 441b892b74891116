package commands

import (
	"errors"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var (
	ErrChangeCaseStatusCommandIsNotConstructed = errors.New(
		"ChangeCaseStatusCommand must be created via NewChangeCaseStatusCommand constructor",
	)
)

// ChangeCaseStatusCommand represents a request to move a case to a new
// lifecycle status. Transitions into a terminal status (CLOSED, CANCELLED)
// also start the close-out workflow, so those require an idempotency key
// from the caller.
type ChangeCaseStatusCommand struct { //nolint:recvcheck //using for validation
	caseID         kernel.UUID
	orgID          kernel.UUID
	targetStatus   concase.Status
	note           string
	actorRef       string
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewChangeCaseStatusCommand creates a command to transition a case. The
// target status must belong to the enumerated set; whether the edge is
// allowed from the case's current status is decided by the handler against
// the loaded aggregate. idempotencyKey is required when targetStatus is
// terminal and ignored otherwise.
func NewChangeCaseStatusCommand(
	caseID kernel.UUID,
	orgID kernel.UUID,
	targetStatus concase.Status,
	note string,
	actorRef string,
	idempotencyKey string,
) (ChangeCaseStatusCommand, error) {
	cmd := ChangeCaseStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setOrgID(orgID),
		cmd.setTargetStatus(targetStatus),
		cmd.setActorRef(actorRef),
	); err != nil {
		return ChangeCaseStatusCommand{}, err
	}

	if targetStatus.IsTerminal() && idempotencyKey == "" {
		return ChangeCaseStatusCommand{}, errs.NewValueIsRequiredError("idempotencyKey")
	}

	cmd.note = note
	cmd.idempotencyKey = idempotencyKey
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeCaseStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeCaseStatusCommandIsNotConstructed)
}

// CaseID returns the identifier of the case to transition.
func (c ChangeCaseStatusCommand) CaseID() kernel.UUID {
	return c.caseID
}

// OrgID returns the acting organization's identifier.
func (c ChangeCaseStatusCommand) OrgID() kernel.UUID {
	return c.orgID
}

// TargetStatus returns the requested status.
func (c ChangeCaseStatusCommand) TargetStatus() concase.Status {
	return c.targetStatus
}

// Note returns the optional transition note.
func (c ChangeCaseStatusCommand) Note() string {
	return c.note
}

// ActorRef returns the acting principal's reference.
func (c ChangeCaseStatusCommand) ActorRef() string {
	return c.actorRef
}

// IdempotencyKey returns the caller-supplied workflow idempotency key.
func (c ChangeCaseStatusCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *ChangeCaseStatusCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *ChangeCaseStatusCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ChangeCaseStatusCommand) setTargetStatus(status concase.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.targetStatus = status
	return nil
}

func (c *ChangeCaseStatusCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
