package queries

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrGetVendorContextQueryIsNotConstructed = errors.New(
		"GetVendorContextQuery must be created via NewGetVendorContextQuery constructor",
	)
)

// GetVendorContextQuery retrieves the live vendor context of a case.
type GetVendorContextQuery struct {
	orgID  kernel.UUID
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorContextQuery creates a query for a case's vendor context.
func NewGetVendorContextQuery(orgID, caseID kernel.UUID) (GetVendorContextQuery, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return GetVendorContextQuery{}, err
	}

	return GetVendorContextQuery{
		orgID:  orgID,
		caseID: caseID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetVendorContextQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorContextQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q GetVendorContextQuery) OrgID() kernel.UUID {
	return q.orgID
}

// CaseID returns the case whose vendor context is requested.
func (q GetVendorContextQuery) CaseID() kernel.UUID {
	return q.caseID
}

// VendorContextResponse is the read model of a vendor context.
type VendorContextResponse struct {
	CaseID       kernel.UUID
	VendorRef    string
	Trades       []string
	ContactEmail string
	Notes        string
}
