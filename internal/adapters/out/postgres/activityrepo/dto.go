// Package activityrepo persists the append-only activity entries emitted
// alongside every write. Entries are recorded in the same transaction as the
// write they describe.
package activityrepo

import (
	"encoding/json"
	"time"

	"concierge/internal/core/domain/model/activity"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting activity entries.
// Payload is stored as jsonb so feed queries can filter on its fields.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID      uuid.UUID `gorm:"type:uuid;index"`
	EntityKind string
	EntityID   uuid.UUID `gorm:"type:uuid;index"`
	Activity   string
	ActorRef   string
	Payload    string    `gorm:"type:jsonb"`
	RecordedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for activity entries.
func (EntryDTO) TableName() string {
	return "activity_entries"
}

// fromDomain converts an activity entry to its database representation. A nil
// payload is stored as an empty JSON object so the column stays non-null.
func fromDomain(entry *activity.Entry) (EntryDTO, error) {
	payload := entry.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return EntryDTO{}, err
	}

	return EntryDTO{
		ID:         entry.ID.Bytes(),
		OrgID:      entry.OrgID.Bytes(),
		EntityKind: entry.EntityKind,
		EntityID:   entry.EntityID.Bytes(),
		Activity:   entry.Activity,
		ActorRef:   entry.ActorRef,
		Payload:    string(raw),
		RecordedAt: entry.RecordedAt,
	}, nil
}
