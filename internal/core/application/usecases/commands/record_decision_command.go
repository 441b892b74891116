package commands

import (
	"errors"

	"concierge/internal/core/domain/model/decision"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var (
	ErrRecordDecisionCommandIsNotConstructed = errors.New(
		"RecordDecisionCommand must be created via NewRecordDecisionCommand constructor",
	)
)

// RecordDecisionCommand represents a request to record an immutable decision
// on a case. Decisions are append-only; there is no update or delete.
type RecordDecisionCommand struct { //nolint:recvcheck //using for validation
	decisionID kernel.UUID
	orgID      kernel.UUID
	caseID     kernel.UUID
	outcome    decision.Outcome
	rationale  string
	actorRef   string

	guard guard.ConstructorGuard
}

// NewRecordDecisionCommand creates a command to record a decision.
func NewRecordDecisionCommand(
	decisionID kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	outcome decision.Outcome,
	rationale string,
	actorRef string,
) (RecordDecisionCommand, error) {
	cmd := RecordDecisionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDecisionID(decisionID),
		cmd.setOrgID(orgID),
		cmd.setCaseID(caseID),
		cmd.setOutcome(outcome),
		cmd.setRationale(rationale),
		cmd.setActorRef(actorRef),
	); err != nil {
		return RecordDecisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDecisionCommand) Validate() error {
	return c.guard.Validate(ErrRecordDecisionCommandIsNotConstructed)
}

// DecisionID returns the identifier for the new decision.
func (c RecordDecisionCommand) DecisionID() kernel.UUID {
	return c.decisionID
}

// OrgID returns the acting organization's identifier.
func (c RecordDecisionCommand) OrgID() kernel.UUID {
	return c.orgID
}

// CaseID returns the case the decision concerns.
func (c RecordDecisionCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Outcome returns the decision outcome.
func (c RecordDecisionCommand) Outcome() decision.Outcome {
	return c.outcome
}

// Rationale returns the written rationale for the decision.
func (c RecordDecisionCommand) Rationale() string {
	return c.rationale
}

// ActorRef returns the deciding principal's reference.
func (c RecordDecisionCommand) ActorRef() string {
	return c.actorRef
}

func (c *RecordDecisionCommand) setDecisionID(decisionID kernel.UUID) error {
	if err := decisionID.Validate(); err != nil {
		return err
	}
	c.decisionID = decisionID
	return nil
}

func (c *RecordDecisionCommand) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *RecordDecisionCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *RecordDecisionCommand) setOutcome(outcome decision.Outcome) error {
	if err := outcome.Validate(); err != nil {
		return err
	}
	c.outcome = outcome
	return nil
}

func (c *RecordDecisionCommand) setRationale(rationale string) error {
	if rationale == "" {
		return errs.NewValueIsRequiredError("rationale")
	}
	c.rationale = rationale
	return nil
}

func (c *RecordDecisionCommand) setActorRef(actorRef string) error {
	if actorRef == "" {
		return ErrActorRefIsRequired
	}
	c.actorRef = actorRef
	return nil
}
