package queries

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrListActionsQueryIsNotConstructed = errors.New(
		"ListActionsQuery must be created via NewListActionsQuery constructor",
	)
)

// ListActionsQuery retrieves the actions of a case, oldest first.
type ListActionsQuery struct {
	orgID  kernel.UUID
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListActionsQuery creates a query for a case's actions.
func NewListActionsQuery(orgID, caseID kernel.UUID) (ListActionsQuery, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return ListActionsQuery{}, err
	}

	return ListActionsQuery{
		orgID:  orgID,
		caseID: caseID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListActionsQuery) Validate() error {
	return q.guard.Validate(ErrListActionsQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q ListActionsQuery) OrgID() kernel.UUID {
	return q.orgID
}

// CaseID returns the case whose actions are requested.
func (q ListActionsQuery) CaseID() kernel.UUID {
	return q.caseID
}

// ActionResponse is the read model of an action.
type ActionResponse struct {
	ID          kernel.UUID
	CaseID      kernel.UUID
	Title       string
	Detail      string
	Status      string
	AssigneeRef string
	DueAt       *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
