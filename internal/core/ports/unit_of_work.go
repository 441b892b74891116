package ports

import (
	"context"

	"concierge/internal/core/domain/model/kernel"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. It provides
// transaction control, sets the row-level-security tenant for the
// transaction, and hands out repositories bound to it. Client code must
// explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// SetTenant binds the transaction to an organization for row-level
	// security. Must be called after Begin and before any repository use.
	SetTenant(ctx context.Context, orgID kernel.UUID) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// CaseRepository returns a CaseRepository bound to the current transaction.
	CaseRepository() CaseRepository

	// ActionRepository returns an ActionRepository bound to the current transaction.
	ActionRepository() ActionRepository

	// PortfolioRepository returns a PortfolioRepository bound to the current transaction.
	PortfolioRepository() PortfolioRepository

	// DecisionRepository returns a DecisionRepository bound to the current transaction.
	DecisionRepository() DecisionRepository

	// ExtContextRepository returns an ExtContextRepository bound to the current transaction.
	ExtContextRepository() ExtContextRepository

	// ActivityRepository returns an ActivityRepository bound to the current transaction.
	ActivityRepository() ActivityRepository
}
