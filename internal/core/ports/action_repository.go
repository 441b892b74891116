package ports

import (
	"context"

	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/kernel"
)

// ActionRepository defines the persistence contract for action aggregates.
// Lookups are organization-scoped like CaseRepository's.
type ActionRepository interface {
	// Add persists a new action aggregate.
	Add(ctx context.Context, aggregate *action.Action) error

	// Update persists changes to an existing action aggregate.
	Update(ctx context.Context, aggregate *action.Action) error

	// Get retrieves an action by ID within the given organization.
	Get(ctx context.Context, orgID, id kernel.UUID) (*action.Action, error)
}
