package activityrepo

import (
	"context"

	"concierge/internal/core/domain/model/activity"

	"gorm.io/gorm"
)

// GormActivityRepository implements ActivityRepository using GORM.
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GORM activity repository.
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Record appends an activity entry.
func (r *GormActivityRepository) Record(ctx context.Context, entry *activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}
