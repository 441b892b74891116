package queries

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrListCaseActivityQueryIsNotConstructed = errors.New(
		"ListCaseActivityQuery must be created via NewListCaseActivityQuery constructor",
	)
)

// ListCaseActivityQuery retrieves the activity feed of a case, newest
// first. The feed includes activity recorded against the case itself and
// against its actions, decisions, and contexts.
type ListCaseActivityQuery struct {
	orgID  kernel.UUID
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListCaseActivityQuery creates a query for a case's activity feed.
func NewListCaseActivityQuery(orgID, caseID kernel.UUID) (ListCaseActivityQuery, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return ListCaseActivityQuery{}, err
	}

	return ListCaseActivityQuery{
		orgID:  orgID,
		caseID: caseID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCaseActivityQuery) Validate() error {
	return q.guard.Validate(ErrListCaseActivityQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q ListCaseActivityQuery) OrgID() kernel.UUID {
	return q.orgID
}

// CaseID returns the case whose feed is requested.
func (q ListCaseActivityQuery) CaseID() kernel.UUID {
	return q.caseID
}

// ActivityResponse is one row of an activity feed.
type ActivityResponse struct {
	ID         kernel.UUID
	EntityKind string
	EntityID   kernel.UUID
	Activity   string
	ActorRef   string
	Payload    map[string]any
	RecordedAt time.Time
}
