package queries

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrListDecisionsQueryIsNotConstructed = errors.New(
		"ListDecisionsQuery must be created via NewListDecisionsQuery constructor",
	)
)

// ListDecisionsQuery retrieves the decisions recorded on a case, oldest
// first.
type ListDecisionsQuery struct {
	orgID  kernel.UUID
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListDecisionsQuery creates a query for a case's decisions.
func NewListDecisionsQuery(orgID, caseID kernel.UUID) (ListDecisionsQuery, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return ListDecisionsQuery{}, err
	}

	return ListDecisionsQuery{
		orgID:  orgID,
		caseID: caseID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListDecisionsQuery) Validate() error {
	return q.guard.Validate(ErrListDecisionsQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q ListDecisionsQuery) OrgID() kernel.UUID {
	return q.orgID
}

// CaseID returns the case whose decisions are requested.
func (q ListDecisionsQuery) CaseID() kernel.UUID {
	return q.caseID
}

// DecisionResponse is the read model of a decision.
type DecisionResponse struct {
	ID           kernel.UUID
	CaseID       kernel.UUID
	Outcome      string
	Rationale    string
	DecidedByRef string
	DecidedAt    time.Time
}
