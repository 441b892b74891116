// Package decisionrepo provides data transfer objects and mapping functions
// for decision persistence. Decisions are append-only: the repository exposes
// an Add and nothing else.
package decisionrepo

import (
	"time"

	"concierge/internal/core/domain/model/decision"

	"github.com/google/uuid"
)

// DecisionDTO represents the database structure for persisting decision
// records. Outcome is stored as its wire string.
type DecisionDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID        uuid.UUID `gorm:"type:uuid;index"`
	CaseID       uuid.UUID `gorm:"type:uuid;index"`
	Outcome      string
	Rationale    string
	DecidedByRef string
	DecidedAt    time.Time
}

// TableName specifies the database table name for decision entities.
func (DecisionDTO) TableName() string {
	return "decisions"
}

// fromDomain converts a decision record to its database representation.
func fromDomain(record *decision.Decision) DecisionDTO {
	return DecisionDTO{
		ID:           record.ID().Bytes(),
		OrgID:        record.OrgID().Bytes(),
		CaseID:       record.CaseID().Bytes(),
		Outcome:      record.Outcome().String(),
		Rationale:    record.Rationale(),
		DecidedByRef: record.DecidedByRef(),
		DecidedAt:    record.DecidedAt(),
	}
}
