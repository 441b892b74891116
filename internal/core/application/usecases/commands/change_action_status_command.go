package commands

import (
	"errors"

	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrChangeActionStatusCommandIsNotConstructed = errors.New(
		"ChangeActionStatusCommand must be created via NewChangeActionStatusCommand constructor",
	)
)

// ChangeActionStatusCommand represents a request to move an action through
// its lifecycle (PLANNED, IN_PROGRESS, BLOCKED, COMPLETED, CANCELLED).
type ChangeActionStatusCommand struct { //nolint:recvcheck //using for validation
	actionID     kernel.UUID
	orgID        kernel.UUID
	targetStatus action.Status
	actorRef     string

	guard guard.ConstructorGuard
}

// NewChangeActionStatusCommand creates a command to transition an action.
func NewChangeActionStatusCommand(
	actionID kernel.UUID,
	orgID kernel.UUID,
	targetStatus action.Status,
	actorRef string,
) (ChangeActionStatusCommand, error) {
	cmd := ChangeActionStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActionID(actionID),
		cmd.setOrgID(orgID),
		cmd.setTargetStatus(targetStatus),
		cmd.setActorRef(actorRef),
	); err != nil {
		return ChangeActionStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeActionStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeActionStatusCommandIsNotConstructed)
}

// ActionID returns the identifier of the action to transition.
func (c ChangeActionStatusCommand) ActionID() kernel.UUID {
	return c.actionID
}

// OrgID returns the acting organization's identifier.
func (c ChangeActionStatusCommand) OrgID() kernel.UUID {
	return c.orgID
}

// TargetStatus returns the requested status.
func (c ChangeActionStatusCommand) TargetStatus() action.Status {
	return c.targetStatus
}

// ActorRef returns the acting principal's reference.
func (c ChangeActionStatusCommand) ActorRef() string {
	return c.actorRef
}

func (c *ChangeActionStatusCommand) setActionID(actionID kernel.UUID) error {
	if err := actionID.Validate(); err != nil {
		return err
	}
	c.actionID = actionID
	return nil
}

func (c *ChangeActionStatusCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *ChangeActionStatusCommand) setTargetStatus(status action.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.targetStatus = status
	return nil
}

func (c *ChangeActionStatusCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
