package portfoliorepo

import (
	"context"
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/domain/model/portfolio"
	"concierge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPortfolioRepository implements PortfolioRepository using GORM.
type GormPortfolioRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPortfolioRepository creates a new GORM portfolio repository.
func NewGormPortfolioRepository(db *gorm.DB, tracker aggregateTracker) *GormPortfolioRepository {
	return &GormPortfolioRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new portfolio to the database.
func (r *GormPortfolioRepository) Add(ctx context.Context, aggregate *portfolio.Portfolio) error {
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

// Update saves an existing portfolio to the database.
func (r *GormPortfolioRepository) Update(ctx context.Context, aggregate *portfolio.Portfolio) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&PortfolioDTO{}).
		Select("name", "property_count", "archived_at").
		Where("org_id = ? AND id = ?", dto.OrgID, dto.ID).
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("portfolioID", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a portfolio by ID within an organization.
func (r *GormPortfolioRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*portfolio.Portfolio, error) {
	if err := errors.Join(orgID.Validate(), id.Validate()); err != nil {
		return nil, err
	}

	var dto PortfolioDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "org_id = ? AND id = ?", orgID.Bytes(), id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("portfolioID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
