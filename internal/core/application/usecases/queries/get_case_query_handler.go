package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GetCaseQueryHandler reads a single case from the database.
type GetCaseQueryHandler struct {
	db *gorm.DB
}

// NewGetCaseQueryHandler creates a handler for single-case reads.
func NewGetCaseQueryHandler(db *gorm.DB) GetCaseQueryHandler {
	return GetCaseQueryHandler{db: db}
}

// Handle executes the query. Soft-deleted cases read as not-found.
func (h GetCaseQueryHandler) Handle(ctx context.Context, query GetCaseQuery) (CaseResponse, error) {
	if err := query.Validate(); err != nil {
		return CaseResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			org_id,
			portfolio_id,
			property_ref,
			title,
			summary,
			priority,
			status,
			assignee_ref,
			tags,
			created_at,
			updated_at
		FROM cases
		WHERE org_id = ? AND id = ? AND deleted_at IS NULL
	`, query.OrgID().String(), query.CaseID().String()).Row()

	resp, err := scanCaseRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CaseResponse{}, errs.NewObjectNotFoundError("caseID", query.CaseID())
		}
		return CaseResponse{}, err
	}

	return resp, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCaseRow(row rowScanner) (CaseResponse, error) {
	var (
		id, orgID, portfolioID                                     uuid.UUID
		propertyRef, title, summary, priority, status, assigneeRef string
		tags                                                       pq.StringArray
		createdAt, updatedAt                                       time.Time
	)

	if err := row.Scan(
		&id, &orgID, &portfolioID,
		&propertyRef, &title, &summary, &priority, &status, &assigneeRef,
		&tags, &createdAt, &updatedAt,
	); err != nil {
		return CaseResponse{}, err
	}

	caseID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return CaseResponse{}, err
	}
	org, err := kernel.UUIDFromBytes(orgID[:])
	if err != nil {
		return CaseResponse{}, err
	}
	pf, err := kernel.UUIDFromBytes(portfolioID[:])
	if err != nil {
		return CaseResponse{}, err
	}

	return CaseResponse{
		ID:          caseID,
		OrgID:       org,
		PortfolioID: pf,
		PropertyRef: propertyRef,
		Title:       title,
		Summary:     summary,
		Priority:    priority,
		Status:      status,
		AssigneeRef: assigneeRef,
		Tags:        tags,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}, nil
}
