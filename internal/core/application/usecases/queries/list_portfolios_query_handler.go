package queries

import (
	"context"
	"database/sql"
	"time"

	"concierge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPortfoliosQueryHandler reads an organization's portfolios.
type ListPortfoliosQueryHandler struct {
	db *gorm.DB
}

// NewListPortfoliosQueryHandler creates a handler for portfolio list reads.
func NewListPortfoliosQueryHandler(db *gorm.DB) ListPortfoliosQueryHandler {
	return ListPortfoliosQueryHandler{db: db}
}

// Handle executes the query, sorted by name.
func (h ListPortfoliosQueryHandler) Handle(
	ctx context.Context,
	query ListPortfoliosQuery,
) ([]PortfolioResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			property_count,
			archived_at,
			created_at
		FROM portfolios
		WHERE org_id = ?
		ORDER BY name, id
	`, query.OrgID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	portfolios := make([]PortfolioResponse, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			name          string
			propertyCount int
			archivedAt    sql.NullTime
			createdAt     time.Time
		)
		if err = rows.Scan(&id, &name, &propertyCount, &archivedAt, &createdAt); err != nil {
			return nil, err
		}

		portfolioID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := PortfolioResponse{
			ID:            portfolioID,
			Name:          name,
			PropertyCount: propertyCount,
			CreatedAt:     createdAt,
		}
		if archivedAt.Valid {
			at := archivedAt.Time
			resp.ArchivedAt = &at
		}
		portfolios = append(portfolios, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return portfolios, nil
}
