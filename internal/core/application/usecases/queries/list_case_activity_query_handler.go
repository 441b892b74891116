package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCaseActivityQueryHandler reads a case's activity feed.
type ListCaseActivityQueryHandler struct {
	db *gorm.DB
}

// NewListCaseActivityQueryHandler creates a handler for activity feed reads.
func NewListCaseActivityQueryHandler(db *gorm.DB) ListCaseActivityQueryHandler {
	return ListCaseActivityQueryHandler{db: db}
}

// Handle executes the query. Rows recorded against the case's actions and
// decisions carry the case ID in their payload, so the feed picks them up
// alongside rows recorded against the case itself.
func (h ListCaseActivityQueryHandler) Handle(
	ctx context.Context,
	query ListCaseActivityQuery,
) ([]ActivityResponse, error) {
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
			entity_kind,
			entity_id,
			activity,
			actor_ref,
			payload,
			recorded_at
		FROM activity_entries
		WHERE org_id = ?
		  AND (entity_id = ? OR payload->>'case_id' = ?)
		ORDER BY recorded_at DESC, id DESC
	`, query.OrgID().String(), query.CaseID().String(), query.CaseID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	feed := make([]ActivityResponse, 0)
	for rows.Next() {
		var (
			id, entityID                   uuid.UUID
			entityKind, activity, actorRef string
			payload                        []byte
			recordedAt                     time.Time
		)
		if err = rows.Scan(&id, &entityKind, &entityID, &activity, &actorRef, &payload, &recordedAt); err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entity, idErr := kernel.UUIDFromBytes(entityID[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := ActivityResponse{
			ID:         entryID,
			EntityKind: entityKind,
			EntityID:   entity,
			Activity:   activity,
			ActorRef:   actorRef,
			RecordedAt: recordedAt,
		}
		if len(payload) > 0 {
			if err = json.Unmarshal(payload, &resp.Payload); err != nil {
				return nil, err
			}
		}
		feed = append(feed, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return feed, nil
}
