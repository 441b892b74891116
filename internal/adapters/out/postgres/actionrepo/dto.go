// Package actionrepo provides data transfer objects and mapping functions for
// action persistence.
package actionrepo

import (
	"time"

	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActionDTO represents the database structure for persisting action
// aggregates. Status is stored as its wire string; due_at is nullable.
type ActionDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID       uuid.UUID `gorm:"type:uuid;index"`
	CaseID      uuid.UUID `gorm:"type:uuid;index"`
	Title       string
	Detail      string
	Status      string
	AssigneeRef string
	DueAt       *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the database table name for action entities.
func (ActionDTO) TableName() string {
	return "actions"
}

// fromDomain converts an action domain aggregate to its database
// representation.
func fromDomain(aggregate *action.Action) ActionDTO {
	return ActionDTO{
		ID:          aggregate.ID().Bytes(),
		OrgID:       aggregate.OrgID().Bytes(),
		CaseID:      aggregate.CaseID().Bytes(),
		Title:       aggregate.Title(),
		Detail:      aggregate.Detail(),
		Status:      aggregate.Status().String(),
		AssigneeRef: aggregate.AssigneeRef(),
		DueAt:       aggregate.DueAt(),
	}
}

// toDomain converts a database DTO to an action domain aggregate using
// RestoreAction.
func toDomain(dto ActionDTO) (*action.Action, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	caseID, err := kernel.UUIDFromBytes(dto.CaseID[:])
	if err != nil {
		return nil, err
	}

	status, err := action.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return action.RestoreAction(
		id,
		orgID,
		caseID,
		dto.Title,
		dto.Detail,
		status,
		dto.AssigneeRef,
		dto.DueAt,
	)
}
