package queries

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrGetCaseQueryIsNotConstructed = errors.New(
		"GetCaseQuery must be created via NewGetCaseQuery constructor",
	)
)

// GetCaseQuery retrieves a single case by ID within an organization.
// A case belonging to another organization reads as not-found.
type GetCaseQuery struct {
	orgID  kernel.UUID
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCaseQuery creates a query to fetch one case.
func NewGetCaseQuery(orgID, caseID kernel.UUID) (GetCaseQuery, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return GetCaseQuery{}, err
	}

	return GetCaseQuery{
		orgID:  orgID,
		caseID: caseID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCaseQuery) Validate() error {
	return q.guard.Validate(ErrGetCaseQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q GetCaseQuery) OrgID() kernel.UUID {
	return q.orgID
}

// CaseID returns the requested case's identifier.
func (q GetCaseQuery) CaseID() kernel.UUID {
	return q.caseID
}

// CaseResponse is the read model of a case.
type CaseResponse struct {
	ID          kernel.UUID
	OrgID       kernel.UUID
	PortfolioID kernel.UUID
	PropertyRef string
	Title       string
	Summary     string
	Priority    string
	Status      string
	AssigneeRef string
	Tags        []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
