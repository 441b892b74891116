// Package caserepo provides data transfer objects and mapping functions for
// case persistence. It implements the repository pattern for the case
// aggregate, converting between domain entities and database rows and keeping
// the append-only status history alongside.
package caserepo

import (
	"time"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CaseDTO represents the database structure for persisting case aggregates.
// Status and priority are stored as their wire strings so the rows stay
// readable in ad-hoc SQL, and tags map to a native text[] column.
type CaseDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID       uuid.UUID `gorm:"type:uuid;index"`
	PortfolioID uuid.UUID `gorm:"type:uuid;index"`
	PropertyRef string
	Title       string
	Summary     string
	Priority    string
	Status      string `gorm:"index"`
	AssigneeRef string
	Tags        pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the database table name for case entities.
func (CaseDTO) TableName() string {
	return "cases"
}

// HistoryEntryDTO represents one row of a case's status history. FromStatus
// is null only for the entry written at case creation.
type HistoryEntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CaseID     uuid.UUID `gorm:"type:uuid;index"`
	FromStatus *string
	ToStatus   string
	ActorRef   string
	Note       string
	RecordedAt time.Time
}

// TableName specifies the database table name for case history entries.
func (HistoryEntryDTO) TableName() string {
	return "case_history"
}

// fromDomain converts a case domain aggregate to its database representation.
func fromDomain(aggregate *concase.Case) CaseDTO {
	return CaseDTO{
		ID:          aggregate.ID().Bytes(),
		OrgID:       aggregate.OrgID().Bytes(),
		PortfolioID: aggregate.PortfolioID().Bytes(),
		PropertyRef: aggregate.PropertyRef(),
		Title:       aggregate.Title(),
		Summary:     aggregate.Summary(),
		Priority:    aggregate.Priority().String(),
		Status:      aggregate.Status().String(),
		AssigneeRef: aggregate.AssigneeRef(),
		Tags:        pq.StringArray(aggregate.Tags()),
	}
}

// toDomain converts a database DTO to a case domain aggregate using
// RestoreCase, re-validating the persisted status and priority.
func toDomain(dto CaseDTO) (*concase.Case, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	portfolioID, err := kernel.UUIDFromBytes(dto.PortfolioID[:])
	if err != nil {
		return nil, err
	}

	priority, err := concase.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	status, err := concase.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return concase.RestoreCase(
		id,
		orgID,
		portfolioID,
		dto.PropertyRef,
		dto.Title,
		dto.Summary,
		priority,
		status,
		dto.AssigneeRef,
		[]string(dto.Tags),
	)
}

// historyFromDomain converts a history entry to its database representation.
func historyFromDomain(entry *concase.HistoryEntry) HistoryEntryDTO {
	var fromStatus *string
	if from := entry.FromStatus(); from != nil {
		s := from.String()
		fromStatus = &s
	}

	return HistoryEntryDTO{
		ID:         entry.ID().Bytes(),
		CaseID:     entry.CaseID().Bytes(),
		FromStatus: fromStatus,
		ToStatus:   entry.ToStatus().String(),
		ActorRef:   entry.ActorRef(),
		Note:       entry.Note(),
		RecordedAt: entry.RecordedAt(),
	}
}
