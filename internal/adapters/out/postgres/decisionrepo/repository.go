package decisionrepo

import (
	"context"

	"concierge/internal/core/domain/model/decision"
	"concierge/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormDecisionRepository implements DecisionRepository using GORM.
type GormDecisionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDecisionRepository creates a new GORM decision repository.
func NewGormDecisionRepository(db *gorm.DB, tracker aggregateTracker) *GormDecisionRepository {
	return &GormDecisionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new decision record to the database.
func (r *GormDecisionRepository) Add(ctx context.Context, record *decision.Decision) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(record.ID(), record)
	return nil
}
