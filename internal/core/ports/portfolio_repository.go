package ports

import (
	"context"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/domain/model/portfolio"
)

// PortfolioRepository defines the persistence contract for portfolios.
type PortfolioRepository interface {
	// Add persists a new portfolio.
	Add(ctx context.Context, aggregate *portfolio.Portfolio) error

	// Update persists changes to an existing portfolio.
	Update(ctx context.Context, aggregate *portfolio.Portfolio) error

	// Get retrieves a portfolio by ID within the given organization.
	Get(ctx context.Context, orgID, id kernel.UUID) (*portfolio.Portfolio, error)
}
