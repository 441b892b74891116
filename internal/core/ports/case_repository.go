package ports

import (
	"context"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
)

// CaseRepository defines the persistence contract for case aggregates.
// All lookups are organization-scoped: a case belonging to another
// organization is reported as not found, never as forbidden.
type CaseRepository interface {
	// Add persists a new case aggregate.
	Add(ctx context.Context, aggregate *concase.Case) error

	// Update persists changes to an existing case aggregate.
	Update(ctx context.Context, aggregate *concase.Case) error

	// Get retrieves a case by ID within the given organization.
	Get(ctx context.Context, orgID, id kernel.UUID) (*concase.Case, error)

	// Delete soft-deletes a case within the given organization.
	Delete(ctx context.Context, orgID, id kernel.UUID) error

	// AddHistoryEntry appends a status-history row for a case. Callers invoke
	// this in the same unit of work as the status write it records.
	AddHistoryEntry(ctx context.Context, entry *concase.HistoryEntry) error
}
