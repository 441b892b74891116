package queries

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/guard"
)

var (
	ErrListPortfoliosQueryIsNotConstructed = errors.New(
		"ListPortfoliosQuery must be created via NewListPortfoliosQuery constructor",
	)
)

// ListPortfoliosQuery retrieves an organization's portfolios, including
// archived ones.
type ListPortfoliosQuery struct {
	orgID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListPortfoliosQuery creates a query for an organization's portfolios.
func NewListPortfoliosQuery(orgID kernel.UUID) (ListPortfoliosQuery, error) {
	if err := orgID.Validate(); err != nil {
		return ListPortfoliosQuery{}, err
	}

	return ListPortfoliosQuery{
		orgID: orgID,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListPortfoliosQuery) Validate() error {
	return q.guard.Validate(ErrListPortfoliosQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q ListPortfoliosQuery) OrgID() kernel.UUID {
	return q.orgID
}

// PortfolioResponse is the read model of a portfolio.
type PortfolioResponse struct {
	ID            kernel.UUID
	Name          string
	PropertyCount int
	ArchivedAt    *time.Time
	CreatedAt     time.Time
}
