package queries

import (
	"context"
	"database/sql"
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHOAContextQueryHandler reads a case's live HOA context.
type GetHOAContextQueryHandler struct {
	db *gorm.DB
}

// NewGetHOAContextQueryHandler creates a handler for HOA context reads.
func NewGetHOAContextQueryHandler(db *gorm.DB) GetHOAContextQueryHandler {
	return GetHOAContextQueryHandler{db: db}
}

// Handle executes the query. Soft-deleted contexts read as not-found.
func (h GetHOAContextQueryHandler) Handle(
	ctx context.Context,
	query GetHOAContextQuery,
) (HOAContextResponse, error) {
	if err := query.Validate(); err != nil {
		return HOAContextResponse{}, err
	}

	var (
		caseID                    uuid.UUID
		hoaRef, managementCompany string
		approvalRequired          bool
		notes                     string
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			case_id,
			hoa_ref,
			management_company,
			approval_required,
			notes
		FROM hoa_contexts
		WHERE org_id = ? AND case_id = ? AND deleted_at IS NULL
	`, query.OrgID().String(), query.CaseID().String()).
		Row().Scan(&caseID, &hoaRef, &managementCompany, &approvalRequired, &notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return HOAContextResponse{}, errs.NewObjectNotFoundError("caseID", query.CaseID())
		}
		return HOAContextResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(caseID[:])
	if err != nil {
		return HOAContextResponse{}, err
	}

	return HOAContextResponse{
		CaseID:            owner,
		HOARef:            hoaRef,
		ManagementCompany: managementCompany,
		ApprovalRequired:  approvalRequired,
		Notes:             notes,
	}, nil
}
