package queries

import (
	"errors"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var (
	ErrListStaffCasesQueryIsNotConstructed = errors.New(
		"ListStaffCasesQuery must be created via NewListStaffCasesQuery constructor",
	)
)

// ListStaffCasesQuery retrieves a page of cases across ALL organizations.
// This is the explicit staff view; the HTTP layer admits only staff-role
// tokens to the route that builds it. Everything else in the system is
// org-scoped.
type ListStaffCasesQuery struct {
	status *concase.Status
	cursor string
	limit  int

	guard guard.ConstructorGuard
}

// NewListStaffCasesQuery creates a cross-org case list query.
func NewListStaffCasesQuery(status *concase.Status, cursor string, limit int) (ListStaffCasesQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListStaffCasesQuery{}, err
		}
	}
	if limit < 0 || limit > maxPageSize {
		return ListStaffCasesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxPageSize)
	}
	if limit == 0 {
		limit = defaultPageSize
	}

	return ListStaffCasesQuery{
		status: status,
		cursor: cursor,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStaffCasesQuery) Validate() error {
	return q.guard.Validate(ErrListStaffCasesQueryIsNotConstructed)
}

// Status returns the status filter, nil for all statuses.
func (q ListStaffCasesQuery) Status() *concase.Status {
	return q.status
}

// Cursor returns the opaque page cursor, empty for the first page.
func (q ListStaffCasesQuery) Cursor() string {
	return q.cursor
}

// Limit returns the page size.
func (q ListStaffCasesQuery) Limit() int {
	return q.limit
}
