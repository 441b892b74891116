package queries

import (
	"errors"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

const (
	defaultPageSize = 25
	maxPageSize     = 100
)

var (
	ErrListCasesQueryIsNotConstructed = errors.New(
		"ListCasesQuery must be created via NewListCasesQuery constructor",
	)
)

// ListCasesQuery retrieves a page of an organization's cases, newest first,
// optionally filtered by status and portfolio. The cursor is opaque to
// callers; an empty cursor starts from the newest case.
type ListCasesQuery struct {
	orgID       kernel.UUID
	status      *concase.Status
	portfolioID *kernel.UUID
	cursor      string
	limit       int

	guard guard.ConstructorGuard
}

// NewListCasesQuery creates a query for a page of cases. A zero limit gets
// the default page size; limits above the maximum are rejected.
func NewListCasesQuery(
	orgID kernel.UUID,
	status *concase.Status,
	portfolioID *kernel.UUID,
	cursor string,
	limit int,
) (ListCasesQuery, error) {
	if err := orgID.Validate(); err != nil {
		return ListCasesQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListCasesQuery{}, err
		}
	}
	if portfolioID != nil {
		if err := portfolioID.Validate(); err != nil {
			return ListCasesQuery{}, err
		}
	}
	if limit < 0 || limit > maxPageSize {
		return ListCasesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxPageSize)
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	return ListCasesQuery{
		orgID:       orgID,
		status:      status,
		portfolioID: portfolioID,
		cursor:      cursor,
		limit:       limit,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCasesQuery) Validate() error {
	return q.guard.Validate(ErrListCasesQueryIsNotConstructed)
}

// OrgID returns the requesting organization's identifier.
func (q ListCasesQuery) OrgID() kernel.UUID {
	return q.orgID
}

// Status returns the status filter, nil for all statuses.
func (q ListCasesQuery) Status() *concase.Status {
	return q.status
}

// PortfolioID returns the portfolio filter, nil for all portfolios.
func (q ListCasesQuery) PortfolioID() *kernel.UUID {
	return q.portfolioID
}

// Cursor returns the opaque page cursor, empty for the first page.
func (q ListCasesQuery) Cursor() string {
	return q.cursor
}

// Limit returns the page size.
func (q ListCasesQuery) Limit() int {
	return q.limit
}

// CasePage is one page of case read models plus the cursor for the next
// page. NextCursor is empty on the last page.
type CasePage struct {
	Cases      []CaseResponse
	NextCursor string
}
