package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListActionsQueryHandler reads the actions of a case.
type ListActionsQueryHandler struct {
	db *gorm.DB
}

// NewListActionsQueryHandler creates a handler for action list reads.
func NewListActionsQueryHandler(db *gorm.DB) ListActionsQueryHandler {
	return ListActionsQueryHandler{db: db}
}

// Handle executes the query. An absent or cross-org case reads as
// not-found rather than an empty list.
func (h ListActionsQueryHandler) Handle(ctx context.Context, query ListActionsQuery) ([]ActionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var exists bool
	err := h.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM cases
			WHERE org_id = ? AND id = ? AND deleted_at IS NULL
		)
	`, query.OrgID().String(), query.CaseID().String()).Row().Scan(&exists)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("caseID", query.CaseID())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			case_id,
			title,
			detail,
			status,
			assignee_ref,
			due_at,
			created_at,
			updated_at
		FROM actions
		WHERE org_id = ? AND case_id = ?
		ORDER BY created_at, id
	`, query.OrgID().String(), query.CaseID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	actions := make([]ActionResponse, 0)
	for rows.Next() {
		var (
			id, caseID                  uuid.UUID
			title, detail, status, aRef string
			dueAt                       sql.NullTime
			createdAt, updatedAt        time.Time
		)
		if err = rows.Scan(&id, &caseID, &title, &detail, &status, &aRef, &dueAt, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		actionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owner, idErr := kernel.UUIDFromBytes(caseID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := ActionResponse{
			ID:          actionID,
			CaseID:      owner,
			Title:       title,
			Detail:      detail,
			Status:      status,
			AssigneeRef: aRef,
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		}
		if dueAt.Valid {
			due := dueAt.Time
			resp.DueAt = &due
		}
		actions = append(actions, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return actions, nil
}
