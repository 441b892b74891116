// Package activity provides the append-only activity entry emitted alongside
// every write. Entries are transport-agnostic so stores and sinks can fan out;
// the postgres adapter persists them in the same transaction as the write
// they describe.
package activity

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

// Kinds of entities an activity entry can reference.
const (
	EntityCase      = "case"
	EntityAction    = "action"
	EntityPortfolio = "portfolio"
	EntityDecision  = "decision"
	EntityVendorCtx = "vendor_context"
	EntityHOACtx    = "hoa_context"
)

// Entry records one action taken against one entity. Payload carries
// activity-specific details (previous/next status, changed fields) and is
// stored as JSON.
type Entry struct {
	ID         kernel.UUID
	OrgID      kernel.UUID
	EntityKind string
	EntityID   kernel.UUID
	Activity   string
	ActorRef   string
	Payload    map[string]any
	RecordedAt time.Time
}

// NewEntry builds an activity entry recorded now.
func NewEntry(orgID kernel.UUID, entityKind string, entityID kernel.UUID, activityName, actorRef string, payload map[string]any) (*Entry, error) {
	entry := &Entry{
		ID:         kernel.NewUUID(),
		OrgID:      orgID,
		EntityKind: entityKind,
		EntityID:   entityID,
		Activity:   activityName,
		ActorRef:   actorRef,
		Payload:    payload,
		RecordedAt: time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

// Validate checks the entry carries the fields every record requires.
func (e *Entry) Validate() error {
	if e == nil {
		return errs.NewValueIsRequiredError("activity entry")
	}
	if err := errors.Join(e.ID.Validate(), e.OrgID.Validate(), e.EntityID.Validate()); err != nil {
		return err
	}
	if e.EntityKind == "" {
		return errs.NewValueIsRequiredError("entityKind")
	}
	if e.Activity == "" {
		return errs.NewValueIsRequiredError("activity")
	}
	if e.RecordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	return nil
}
