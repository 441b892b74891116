package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListCasesQueryHandler reads a page of an organization's cases.
type ListCasesQueryHandler struct {
	db *gorm.DB
}

// NewListCasesQueryHandler creates a handler for case list reads.
func NewListCasesQueryHandler(db *gorm.DB) ListCasesQueryHandler {
	return ListCasesQueryHandler{db: db}
}

// Handle executes the query. Ordering is newest first with the case ID as a
// tiebreaker, which is what the cursor encodes.
func (h ListCasesQueryHandler) Handle(ctx context.Context, query ListCasesQuery) (CasePage, error) {
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
		WHERE org_id = ? AND deleted_at IS NULL`
	args := []any{query.OrgID().String()}

	if query.Status() != nil {
		sql += ` AND status = ?`
		args = append(args, query.Status().String())
	}
	if query.PortfolioID() != nil {
		sql += ` AND portfolio_id = ?`
		args = append(args, query.PortfolioID().String())
	}
	if query.Cursor() != "" {
		cursor, err := decodeCursor(query.Cursor())
		if err != nil {
			return CasePage{}, err
		}
		sql += ` AND (created_at, id) < (?, ?)`
		args = append(args, cursor.CreatedAt, cursor.ID)
	}

	// one extra row decides whether another page exists
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
