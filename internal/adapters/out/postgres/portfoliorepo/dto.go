// Package portfoliorepo provides data transfer objects and mapping functions
// for portfolio persistence. Archived portfolios stay listable, so archiving
// is modeled as a timestamp column rather than a soft delete.
package portfoliorepo

import (
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/domain/model/portfolio"

	"github.com/google/uuid"
)

// PortfolioDTO represents the database structure for persisting portfolios.
type PortfolioDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrgID         uuid.UUID `gorm:"type:uuid;index"`
	Name          string
	PropertyCount int
	ArchivedAt    *time.Time
	CreatedAt     time.Time
}

// TableName specifies the database table name for portfolio entities.
func (PortfolioDTO) TableName() string {
	return "portfolios"
}

// fromDomain converts a portfolio domain aggregate to its database
// representation. The archive timestamp is set only on the update that
// performs the archiving; it is never rewritten afterwards because archiving
// an archived portfolio is rejected by the aggregate.
func fromDomain(aggregate *portfolio.Portfolio) PortfolioDTO {
	var archivedAt *time.Time
	if aggregate.IsArchived() {
		now := time.Now().UTC()
		archivedAt = &now
	}

	return PortfolioDTO{
		ID:            aggregate.ID().Bytes(),
		OrgID:         aggregate.OrgID().Bytes(),
		Name:          aggregate.Name(),
		PropertyCount: aggregate.PropertyCount(),
		ArchivedAt:    archivedAt,
	}
}

// toDomain converts a database DTO to a portfolio domain aggregate using
// RestorePortfolio.
func toDomain(dto PortfolioDTO) (*portfolio.Portfolio, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrgID[:])
	if err != nil {
		return nil, err
	}

	return portfolio.RestorePortfolio(id, orgID, dto.Name, dto.PropertyCount, dto.ArchivedAt != nil)
}
