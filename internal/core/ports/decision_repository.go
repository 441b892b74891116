package ports

import (
	"context"

	"concierge/internal/core/domain/model/decision"
)

// DecisionRepository defines the persistence contract for decision records.
// Decisions are immutable: there is no update or delete.
type DecisionRepository interface {
	// Add persists a new decision record.
	Add(ctx context.Context, record *decision.Decision) error
}
