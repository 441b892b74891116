package queries

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrGetHOAContextQueryIsNotConstructed = errors.New(
		"GetHOAContextQuery must be created via NewGetHOAContextQuery constructor",
	)
)

// GetHOAContextQuery retrieves the live HOA context of a case.
type GetHOAContextQuery struct {
	orgID  kernel.UUID
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetHOAContextQuery creates a query for a case's HOA context.
func NewGetHOAContextQuery(orgID, caseID kernel.UUID) (GetHOAContextQuery, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return GetHOAContextQuery{}, err
	}

	return GetHOAContextQuery{
		orgID:  orgID,
		caseID: caseID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHOAContextQuery) Validate() error {
	return q.guard.Validate(ErrGetHOAContextQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q GetHOAContextQuery) OrgID() kernel.UUID {
	return q.orgID
}

// CaseID returns the case whose HOA context is requested.
func (q GetHOAContextQuery) CaseID() kernel.UUID {
	return q.caseID
}

// HOAContextResponse is the read model of an HOA context.
type HOAContextResponse struct {
	CaseID            kernel.UUID
	HOARef            string
	ManagementCompany string
	ApprovalRequired  bool
	Notes             string
}
