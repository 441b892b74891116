package caserepo

import (
	"context"
	"errors"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCaseRepository implements CaseRepository using GORM.
type GormCaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCaseRepository creates a new GORM case repository.
func NewGormCaseRepository(db *gorm.DB, tracker aggregateTracker) *GormCaseRepository {
	return &GormCaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new case to the database.
func (r *GormCaseRepository) Add(ctx context.Context, aggregate *concase.Case) error {
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

// Update saves an existing case to the database. The org filter keeps a
// transaction from touching another organization's row even when row-level
// security is not active on the connection.
func (r *GormCaseRepository) Update(ctx context.Context, aggregate *concase.Case) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	// Columns are selected explicitly so cleared fields (summary, assignee,
	// tags) persist; a struct update would skip their zero values.
	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CaseDTO{}).
		Select("title", "summary", "priority", "status", "assignee_ref", "tags", "updated_at").
		Where("org_id = ? AND id = ?", dto.OrgID, dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("caseID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a case by ID within an organization. A case that exists but
// belongs to another organization is reported as not found.
func (r *GormCaseRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*concase.Case, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto CaseDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "org_id = ? AND id = ?", orgID.Bytes(), id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("caseID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete soft-deletes a case within an organization. The row keeps its data
// under a deleted_at mark and stops matching reads.
func (r *GormCaseRepository) Delete(ctx context.Context, orgID, id kernel.UUID) error {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("org_id = ? AND id = ?", orgID.Bytes(), id.Bytes()).
		Delete(&CaseDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("caseID", id.String())
	}

	return nil
}

// AddHistoryEntry appends a status-history row for a case.
func (r *GormCaseRepository) AddHistoryEntry(ctx context.Context, entry *concase.HistoryEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := historyFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}
