// Package queries contains read operations in the CQRS architecture. Query
// handlers read directly from the database, bypassing the aggregate
// repositories; every query is organization-scoped except the explicit
// staff views.
package queries

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"concierge/internal/pkg/errs"
)

// pageCursor is the decoded form of the opaque list cursor. Keyset
// pagination on (created_at, id) keeps pages stable while rows are inserted.
type pageCursor struct {
	CreatedAt time.Time `json:"created_at"`
	ID        string    `json:"id"`
}

func encodeCursor(c pageCursor) string {
	raw, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(raw)
}

func decodeCursor(s string) (pageCursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return pageCursor{}, errs.NewValueIsInvalidErrorWithCause("cursor", err)
	}

	var c pageCursor
	if err = json.Unmarshal(raw, &c); err != nil {
		return pageCursor{}, errs.NewValueIsInvalidErrorWithCause("cursor", err)
	}
	return c, nil
}
