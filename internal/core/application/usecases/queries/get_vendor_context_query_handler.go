package queries

import (
	"context"
	"database/sql"
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetVendorContextQueryHandler reads a case's live vendor context.
type GetVendorContextQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorContextQueryHandler creates a handler for vendor context
// reads.
func NewGetVendorContextQueryHandler(db *gorm.DB) GetVendorContextQueryHandler {
	return GetVendorContextQueryHandler{db: db}
}

// Handle executes the query. Soft-deleted contexts read as not-found.
func (h GetVendorContextQueryHandler) Handle(
	ctx context.Context,
	query GetVendorContextQuery,
) (VendorContextResponse, error) {
	if err := query.Validate(); err != nil {
		return VendorContextResponse{}, err
	}

	var (
		caseID                         uuid.UUID
		vendorRef, contactEmail, notes string
		trades                         pq.StringArray
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			case_id,
			vendor_ref,
			contact_email,
			notes,
			trades
		FROM vendor_contexts
		WHERE org_id = ? AND case_id = ? AND deleted_at IS NULL
	`, query.OrgID().String(), query.CaseID().String()).
		Row().Scan(&caseID, &vendorRef, &contactEmail, &notes, &trades)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return VendorContextResponse{}, errs.NewObjectNotFoundError("caseID", query.CaseID())
		}
		return VendorContextResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(caseID[:])
	if err != nil {
		return VendorContextResponse{}, err
	}

	return VendorContextResponse{
		CaseID:       owner,
		VendorRef:    vendorRef,
		Trades:       trades,
		ContactEmail: contactEmail,
		Notes:        notes,
	}, nil
}
