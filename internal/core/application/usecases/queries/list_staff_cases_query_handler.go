package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListStaffCasesQueryHandler reads a cross-org page of cases for the staff
// view. It runs on a connection whose role bypasses the row-level-security
// policy; the route-level staff check is the only gate.
type ListStaffCasesQueryHandler struct {
	db *gorm.DB
}

// NewListStaffCasesQueryHandler creates a handler for staff case reads.
func NewListStaffCasesQueryHandler(db *gorm.DB) ListStaffCasesQueryHandler {
	return ListStaffCasesQueryHandler{db: db}
}

// Handle executes the query.
func (h ListStaffCasesQueryHandler) Handle(ctx context.Context, query ListStaffCasesQuery) (CasePage, error) {
	if err := query.Validate(); err != nil {
		return CasePage{}, err
	}

	sql := `
		SELECT
			id,
			org_id,
			portfolio_id,
			property_ref,
			title,
			summary,
			priority,
			status,
			assignee_ref,
			tags,
			created_at,
			updated_at
		FROM cases
		WHERE deleted_at IS NULL`
	args := []any{}

	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	if query.Cursor() != "" {
		cursor, err := decodeCursor(query.Cursor())
		if err != nil {
			return CasePage{}, err
		}
		sql += ` AND (created_at, id) < (?, ?)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}

	sql += `
		ORDER BY created_at DESC, id DESC
		LIMIT ?`
	args = append(args, query.Limit()+1)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return CasePage{}, err
	}
	defer rows.Close()

	cases := make([]CaseResponse, 0, query.Limit())
	for rows.Next() {
		resp, scanErr := scanCaseRow(rows)
		if scanErr != nil {
			return CasePage{}, scanErr
		}
		cases = append(cases, resp)
	}
	if err = rows.Err(); err != nil {
		return CasePage{}, err
	}

	page := CasePage{Cases: cases}
	if len(cases) > query.Limit() {
		page.Cases = cases[:query.Limit()]
		last := page.Cases[len(page.Cases)-1]
		page.NextCursor = encodeCursor(pageCursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID.String(),
		})
	}

	return page, nil
}
