// Package contextrepo provides data transfer objects and mapping functions
// for vendor and HOA context persistence. A case holds at most one live
// context per kind; Put soft-deletes the previous row and inserts a fresh
// one, so the table doubles as a history of replaced contexts.
package contextrepo

import (
	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// VendorContextDTO represents the database structure for persisting vendor
// contexts. Trades map to a native text[] column.
type VendorContextDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID        uuid.UUID `gorm:"type:uuid;index"`
	CaseID       uuid.UUID `gorm:"type:uuid;index"`
	VendorRef    string
	Trades       pq.StringArray `gorm:"type:text[]"`
	ContactEmail string
	Notes        string
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for vendor contexts.
func (VendorContextDTO) TableName() string {
	return "vendor_contexts"
}

// HOAContextDTO represents the database structure for persisting HOA
// contexts.
type HOAContextDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID             uuid.UUID `gorm:"type:uuid;index"`
	CaseID            uuid.UUID `gorm:"type:uuid;index"`
	HOARef            string
	ManagementCompany string
	ApprovalRequired  bool
	Notes             string
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for HOA contexts.
func (HOAContextDTO) TableName() string {
	return "hoa_contexts"
}

func vendorFromDomain(aggregate *extcontext.VendorContext) VendorContextDTO {
	return VendorContextDTO{
		ID:           aggregate.ID().Bytes(),
		OrgID:        aggregate.OrgID().Bytes(),
		CaseID:       aggregate.CaseID().Bytes(),
		VendorRef:    aggregate.VendorRef(),
		Trades:       pq.StringArray(aggregate.Trades()),
		ContactEmail: aggregate.ContactEmail(),
		Notes:        aggregate.Notes(),
	}
}

func vendorToDomain(dto VendorContextDTO) (*extcontext.VendorContext, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	caseID, err := kernel.UUIDFromBytes(dto.CaseID[:])
	if err != nil {
		return nil, err
	}

	return extcontext.NewVendorContext(
		id,
		orgID,
		caseID,
		dto.VendorRef,
		[]string(dto.Trades),
		dto.ContactEmail,
		dto.Notes,
	)
}

func hoaFromDomain(aggregate *extcontext.HOAContext) HOAContextDTO {
	return HOAContextDTO{
		ID:                aggregate.ID().Bytes(),
		OrgID:             aggregate.OrgID().Bytes(),
		CaseID:            aggregate.CaseID().Bytes(),
		HOARef:            aggregate.HOARef(),
		ManagementCompany: aggregate.ManagementCompany(),
		ApprovalRequired:  aggregate.ApprovalRequired(),
		Notes:             aggregate.Notes(),
	}
}

func hoaToDomain(dto HOAContextDTO) (*extcontext.HOAContext, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	caseID, err := kernel.UUIDFromBytes(dto.CaseID[:])
	if err != nil {
		return nil, err
	}

	return extcontext.NewHOAContext(
		id,
		orgID,
		caseID,
		dto.HOARef,
		dto.ManagementCompany,
		dto.ApprovalRequired,
		dto.Notes,
	)
}
