package extcontext

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

var (
	// ErrHOAContextIsNotConstructed is returned when an HOAContext was not
	// created through NewHOAContext.
	ErrHOAContextIsNotConstructed = errors.New("HOAContext must be created via NewHOAContext constructor")

	// ErrHOARefIsRequired is returned when the HOA reference is missing.
	ErrHOARefIsRequired = errs.NewValueIsRequiredError("hoaRef")
)

// HOAContext captures the homeowners-association rules governing a case:
// which HOA applies, who manages it, and whether its approval is required
// before work proceeds.
type HOAContext struct {
	id                kernel.UUID
	orgID             kernel.UUID
	caseID            kernel.UUID
	hoaRef            string
	managementCompany string
	approvalRequired  bool
	notes             string

	isConstructed bool
}

// NewHOAContext creates an HOAContext for a case.
func NewHOAContext(
	id kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	hoaRef string,
	managementCompany string,
	approvalRequired bool,
	notes string,
) (*HOAContext, error) {
	if err := errors.Join(id.Validate(), orgID.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}
	if hoaRef == "" {
		return nil, ErrHOARefIsRequired
	}

	return &HOAContext{
		id:                id,
		orgID:             orgID,
		caseID:            caseID,
		hoaRef:            hoaRef,
		managementCompany: managementCompany,
		approvalRequired:  approvalRequired,
		notes:             notes,
		isConstructed:     true,
	}, nil
}

// Validate ensures the HOAContext was properly constructed.
func (h *HOAContext) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHOAContextIsNotConstructed
	}
	return nil
}

// ID returns the context identifier.
func (h *HOAContext) ID() kernel.UUID {
	return h.id
}

// OrgID returns the owning organization's identifier.
func (h *HOAContext) OrgID() kernel.UUID {
	return h.orgID
}

// CaseID returns the identifier of the case the context is attached to.
func (h *HOAContext) CaseID() kernel.UUID {
	return h.caseID
}

// HOARef returns the organization's reference for the HOA.
func (h *HOAContext) HOARef() string {
	return h.hoaRef
}

// ManagementCompany returns the HOA's management company name.
func (h *HOAContext) ManagementCompany() string {
	return h.managementCompany
}

// ApprovalRequired reports whether HOA approval is needed before work starts.
func (h *HOAContext) ApprovalRequired() bool {
	return h.approvalRequired
}

// Notes returns free-form notes about the HOA relationship.
func (h *HOAContext) Notes() string {
	return h.notes
}
