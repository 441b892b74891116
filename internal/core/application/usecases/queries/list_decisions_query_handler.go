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

// ListDecisionsQueryHandler reads the decisions of a case.
type ListDecisionsQueryHandler struct {
	db *gorm.DB
}

// NewListDecisionsQueryHandler creates a handler for decision list reads.
func NewListDecisionsQueryHandler(db *gorm.DB) ListDecisionsQueryHandler {
	return ListDecisionsQueryHandler{db: db}
}

// Handle executes the query. An absent or cross-org case reads as
// not-found.
func (h ListDecisionsQueryHandler) Handle(
	ctx context.Context,
	query ListDecisionsQuery,
) ([]DecisionResponse, error) {
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
			outcome,
			rationale,
			decided_by_ref,
			decided_at
		FROM decisions
		WHERE org_id = ? AND case_id = ?
		ORDER BY decided_at, id
	`, query.OrgID().String(), query.CaseID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	decisions := make([]DecisionResponse, 0)
	for rows.Next() {
		var (
			id, caseID                    uuid.UUID
			outcome, rationale, decidedBy string
			decidedAt                     time.Time
		)
		if err = rows.Scan(&id, &caseID, &outcome, &rationale, &decidedBy, &decidedAt); err != nil {
			return nil, err
		}

		decisionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		owner, idErr := kernel.UUIDFromBytes(caseID[:])
		if idErr != nil {
			return nil, idErr
		}

		decisions = append(decisions, DecisionResponse{
			ID:           decisionID,
			CaseID:       owner,
			Outcome:      outcome,
			Rationale:    rationale,
			DecidedByRef: decidedBy,
			DecidedAt:    decidedAt,
		})
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return decisions, nil
}
