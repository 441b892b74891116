package extcontext

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

var (
	// ErrVendorContextIsNotConstructed is returned when a VendorContext was
	// not created through NewVendorContext.
	ErrVendorContextIsNotConstructed = errors.New("VendorContext must be created via NewVendorContext constructor")

	// ErrVendorRefIsRequired is returned when the vendor reference is missing.
	ErrVendorRefIsRequired = errs.NewValueIsRequiredError("vendorRef")
)

// VendorContext captures the vendor engagement attached to a case: who the
// vendor is, what trades they cover, and how to reach them.
type VendorContext struct {
	id           kernel.UUID
	orgID        kernel.UUID
	caseID       kernel.UUID
	vendorRef    string
	trades       []string
	contactEmail string
	notes        string

	isConstructed bool
}

// NewVendorContext creates a VendorContext for a case.
func NewVendorContext(
	id kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	vendorRef string,
	trades []string,
	contactEmail string,
	notes string,
) (*VendorContext, error) {
	if err := errors.Join(id.Validate(), orgID.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}
	if vendorRef == "" {
		return nil, ErrVendorRefIsRequired
	}

	return &VendorContext{
		id:            id,
		orgID:         orgID,
		caseID:        caseID,
		vendorRef:     vendorRef,
		trades:        trades,
		contactEmail:  contactEmail,
		notes:         notes,
		isConstructed: true,
	}, nil
}

// Validate ensures the VendorContext was properly constructed.
func (v *VendorContext) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVendorContextIsNotConstructed
	}
	return nil
}

// ID returns the context identifier.
func (v *VendorContext) ID() kernel.UUID {
	return v.id
}

// OrgID returns the owning organization's identifier.
func (v *VendorContext) OrgID() kernel.UUID {
	return v.orgID
}

// CaseID returns the identifier of the case the context is attached to.
func (v *VendorContext) CaseID() kernel.UUID {
	return v.caseID
}

// VendorRef returns the organization's reference for the vendor.
func (v *VendorContext) VendorRef() string {
	return v.vendorRef
}

// Trades returns the trades the vendor covers.
func (v *VendorContext) Trades() []string {
	return v.trades
}

// ContactEmail returns the vendor contact email.
func (v *VendorContext) ContactEmail() string {
	return v.contactEmail
}

// Notes returns free-form engagement notes.
func (v *VendorContext) Notes() string {
	return v.notes
}
