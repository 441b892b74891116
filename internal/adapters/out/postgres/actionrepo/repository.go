package actionrepo

import (
	"context"
	"errors"

	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActionRepository implements ActionRepository using GORM.
type GormActionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormActionRepository creates a new GORM action repository.
func NewGormActionRepository(db *gorm.DB, tracker aggregateTracker) *GormActionRepository {
	return &GormActionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new action to the database.
func (r *GormActionRepository) Add(ctx context.Context, aggregate *action.Action) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing action to the database.
func (r *GormActionRepository) Update(ctx context.Context, aggregate *action.Action) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ActionDTO{}).
		Select("title", "detail", "status", "assignee_ref", "due_at", "updated_at").
		Where("org_id = ? AND id = ?", dto.OrgID, dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("actionID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an action by ID within an organization.
func (r *GormActionRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*action.Action, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto ActionDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "org_id = ? AND id = ?", orgID.Bytes(), id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actionID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
