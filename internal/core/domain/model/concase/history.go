package concase

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created through one of its constructors.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewCreationHistoryEntry, NewTransitionHistoryEntry, or RestoreHistoryEntry")

// HistoryEntry is an append-only record of a single case status transition.
// The entry written at case creation has a nil FromStatus and a ToStatus of
// Intake; every later entry carries both sides of the edge.
type HistoryEntry struct {
	id         kernel.UUID
	caseID     kernel.UUID
	fromStatus *Status
	toStatus   Status
	actorRef   string
	note       string
	recordedAt time.Time

	isConstructed bool
}

// NewCreationHistoryEntry builds the initial history entry for a freshly
// created case: FromStatus is nil and ToStatus is Intake.
func NewCreationHistoryEntry(caseID kernel.UUID, actorRef string) (*HistoryEntry, error) {
	if err := caseID.Validate(); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:            kernel.NewUUID(),
		caseID:        caseID,
		fromStatus:    nil,
		toStatus:      Intake,
		actorRef:      actorRef,
		recordedAt:    time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// NewTransitionHistoryEntry builds a history entry for a performed transition.
// Both sides of the edge must be valid statuses; the transition itself is
// assumed to have been validated by the aggregate.
func NewTransitionHistoryEntry(caseID kernel.UUID, from, to Status, actorRef, note string) (*HistoryEntry, error) {
	if err := errors.Join(caseID.Validate(), from.Validate(), to.Validate()); err != nil {
		return nil, err
	}

	return &HistoryEntry{
		id:            kernel.NewUUID(),
		caseID:        caseID,
		fromStatus:    &from,
		toStatus:      to,
		actorRef:      actorRef,
		note:          note,
		recordedAt:    time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreHistoryEntry reconstructs a HistoryEntry from persistence.
func RestoreHistoryEntry(
	id kernel.UUID,
	caseID kernel.UUID,
	fromStatus *Status,
	toStatus Status,
	actorRef string,
	note string,
	recordedAt time.Time,
) (*HistoryEntry, error) {
	if err := errors.Join(id.Validate(), caseID.Validate(), toStatus.Validate()); err != nil {
		return nil, err
	}
	if fromStatus != nil {
		if err := fromStatus.Validate(); err != nil {
			return nil, err
		}
	}
	if recordedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("recordedAt")
	}

	return &HistoryEntry{
		id:            id,
		caseID:        caseID,
		fromStatus:    fromStatus,
		toStatus:      toStatus,
		actorRef:      actorRef,
		note:          note,
		recordedAt:    recordedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the entry was created through a constructor.
func (h *HistoryEntry) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (h *HistoryEntry) ID() kernel.UUID {
	return h.id
}

// CaseID returns the identifier of the case the entry belongs to.
func (h *HistoryEntry) CaseID() kernel.UUID {
	return h.caseID
}

// FromStatus returns the status before the transition, or nil for the
// creation entry.
func (h *HistoryEntry) FromStatus() *Status {
	return h.fromStatus
}

// ToStatus returns the status after the transition.
func (h *HistoryEntry) ToStatus() Status {
	return h.toStatus
}

// ActorRef returns the reference of the actor who performed the transition.
func (h *HistoryEntry) ActorRef() string {
	return h.actorRef
}

// Note returns the optional free-form note attached to the transition.
func (h *HistoryEntry) Note() string {
	return h.note
}

// RecordedAt returns when the transition was recorded.
func (h *HistoryEntry) RecordedAt() time.Time {
	return h.recordedAt
}
