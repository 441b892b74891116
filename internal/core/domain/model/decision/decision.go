// Package decision provides the Decision record: an immutable note of a
// judgment made on a case (approve work, decline a quote, defer to the owner).
// Decisions are written once and never updated or deleted.
package decision

import (
	"errors"
	"fmt"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

var (
	// ErrDecisionIsNotConstructed is returned when a Decision instance was not
	// created through NewDecision or RestoreDecision.
	ErrDecisionIsNotConstructed = errors.New("Decision must be created via NewDecision or RestoreDecision constructor")

	// ErrDecidedByIsRequired is returned when the deciding actor is missing.
	ErrDecidedByIsRequired = errs.NewValueIsRequiredError("decidedByRef")
)

// Outcome enumerates the possible results of a decision.
type Outcome int

const (
	// OutcomeUnknown represents an invalid or undefined outcome.
	OutcomeUnknown Outcome = iota
	// OutcomeApproved records approval of the proposed work or cost.
	OutcomeApproved
	// OutcomeDeclined records rejection.
	OutcomeDeclined
	// OutcomeDeferred records that the call was pushed to another party.
	OutcomeDeferred
)

func getOutcomeStrings() map[Outcome]string {
	return map[Outcome]string{
		OutcomeUnknown:  "UNKNOWN",
		OutcomeApproved: "APPROVED",
		OutcomeDeclined: "DECLINED",
		OutcomeDeferred: "DEFERRED",
	}
}

// OutcomeFromString parses the wire representation of an outcome.
func OutcomeFromString(s string) (Outcome, error) {
	for outcome, str := range getOutcomeStrings() {
		if str == s && outcome != OutcomeUnknown {
			return outcome, nil
		}
	}
	return OutcomeUnknown, errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%q is not a valid outcome", s))
}

// Validate checks that the Outcome belongs to the enumerated set.
func (o Outcome) Validate() error {
	if o == OutcomeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%d is not a valid outcome", o))
	}
	if _, ok := getOutcomeStrings()[o]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("outcome", fmt.Errorf("%d is not a valid outcome", o))
	}
	return nil
}

// String returns the wire name of the outcome. Implements fmt.Stringer.
func (o Outcome) String() string {
	if str, ok := getOutcomeStrings()[o]; ok {
		return str
	}
	return "UNKNOWN"
}

// Decision is an immutable record of a judgment on a case.
type Decision struct {
	id           kernel.UUID
	orgID        kernel.UUID
	caseID       kernel.UUID
	outcome      Outcome
	rationale    string
	decidedByRef string
	decidedAt    time.Time

	isConstructed bool
}

// NewDecision records a decision made now.
func NewDecision(
	id kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	outcome Outcome,
	rationale string,
	decidedByRef string,
) (*Decision, error) {
	return RestoreDecision(id, orgID, caseID, outcome, rationale, decidedByRef, time.Now().UTC())
}

// RestoreDecision reconstructs a Decision from persistence.
func RestoreDecision(
	id kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	outcome Outcome,
	rationale string,
	decidedByRef string,
	decidedAt time.Time,
) (*Decision, error) {
	if err := errors.Join(
		id.Validate(),
		orgID.Validate(),
		caseID.Validate(),
		outcome.Validate(),
	); err != nil {
		return nil, err
	}
	if decidedByRef == "" {
		return nil, ErrDecidedByIsRequired
	}
	if decidedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("decidedAt")
	}

	return &Decision{
		id:            id,
		orgID:         orgID,
		caseID:        caseID,
		outcome:       outcome,
		rationale:     rationale,
		decidedByRef:  decidedByRef,
		decidedAt:     decidedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Decision instance was properly constructed.
func (d *Decision) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDecisionIsNotConstructed
	}
	return nil
}

// ID returns the decision's unique identifier.
func (d *Decision) ID() kernel.UUID {
	return d.id
}

// OrgID returns the owning organization's identifier.
func (d *Decision) OrgID() kernel.UUID {
	return d.orgID
}

// CaseID returns the identifier of the case the decision belongs to.
func (d *Decision) CaseID() kernel.UUID {
	return d.caseID
}

// Outcome returns the decision outcome.
func (d *Decision) Outcome() Outcome {
	return d.outcome
}

// Rationale returns the free-form explanation of the decision.
func (d *Decision) Rationale() string {
	return d.rationale
}

// DecidedByRef returns the reference of the deciding actor.
func (d *Decision) DecidedByRef() string {
	return d.decidedByRef
}

// DecidedAt returns when the decision was made.
func (d *Decision) DecidedAt() time.Time {
	return d.decidedAt
}
