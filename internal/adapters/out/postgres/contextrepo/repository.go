package contextrepo

import (
	"context"
	"errors"

	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormExtContextRepository implements ExtContextRepository using GORM.
// Contexts are keyed by case, not tracked per aggregate, so the repository
// takes no tracker.
type GormExtContextRepository struct {
	db *gorm.DB
}

// NewGormExtContextRepository creates a new GORM context repository.
func NewGormExtContextRepository(db *gorm.DB) *GormExtContextRepository {
	return &GormExtContextRepository{db: db}
}

// PutVendorContext creates or replaces the vendor context for a case. Any
// live row for the case is soft-deleted before the new one is inserted.
func (r *GormExtContextRepository) PutVendorContext(ctx context.Context, aggregate *extcontext.VendorContext) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := vendorFromDomain(aggregate)
	if err := r.db.WithContext(ctx).
		Where("org_id = ? AND case_id = ?", dto.OrgID, dto.CaseID).
		Delete(&VendorContextDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetVendorContext retrieves the live vendor context for a case.
func (r *GormExtContextRepository) GetVendorContext(ctx context.Context, orgID, caseID kernel.UUID) (*extcontext.VendorContext, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}

	var dto VendorContextDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "org_id = ? AND case_id = ?", orgID.Bytes(), caseID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("caseID", caseID.String())
		}
		return nil, err
	}

	return vendorToDomain(dto)
}

// DeleteVendorContext soft-deletes the vendor context for a case.
func (r *GormExtContextRepository) DeleteVendorContext(ctx context.Context, orgID, caseID kernel.UUID) error {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("org_id = ? AND case_id = ?", orgID.Bytes(), caseID.Bytes()).
		Delete(&VendorContextDTO{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("caseID", caseID.String())
	}

	return nil
}

// PutHOAContext creates or replaces the HOA context for a case.
func (r *GormExtContextRepository) PutHOAContext(ctx context.Context, aggregate *extcontext.HOAContext) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := hoaFromDomain(aggregate)
	if err := r.db.WithContext(ctx).
		Where("org_id = ? AND case_id = ?", dto.OrgID, dto.CaseID).
		Delete(&HOAContextDTO{}).Error; err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetHOAContext retrieves the live HOA context for a case.
func (r *GormExtContextRepository) GetHOAContext(ctx context.Context, orgID, caseID kernel.UUID) (*extcontext.HOAContext, error) {
	if err := errors.Join(orgID.Validate(), caseID.Validate()); err != nil {
		return nil, err
	}

	var dto HOAContextDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "org_id = ? AND case_id = ?", orgID.Bytes(), caseID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("caseID", caseID.String())
		}
		return nil, err
	}

	return hoaToDomain(dto)
}
