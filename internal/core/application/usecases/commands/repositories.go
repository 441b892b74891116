// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// authorization against the external policy engine, transaction management,
// and persistence with an activity row in the same transaction.
package commands

import (
	"context"
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/ports"
)

// ErrActorRefIsRequired is returned when a command is built without the
// reference of the acting principal.
var ErrActorRefIsRequired = errors.New("actor ref is required")

// Unit of Work interfaces provide transaction management for command
// handlers. Handlers depend on the narrowest interface that covers the
// repositories they touch.
type (
	// TxManager handles the database transaction lifecycle and binds the
	// transaction to the acting organization for row-level security.
	TxManager interface {
		Begin(ctx context.Context) error
		SetTenant(ctx context.Context, orgID kernel.UUID) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CaseRepoFactory provides access to the case repository within a transaction.
	CaseRepoFactory interface {
		CaseRepository() ports.CaseRepository
	}

	// ActionRepoFactory provides access to the action repository within a transaction.
	ActionRepoFactory interface {
		ActionRepository() ports.ActionRepository
	}

	// PortfolioRepoFactory provides access to the portfolio repository within a transaction.
	PortfolioRepoFactory interface {
		PortfolioRepository() ports.PortfolioRepository
	}

	// DecisionRepoFactory provides access to the decision repository within a transaction.
	DecisionRepoFactory interface {
		DecisionRepository() ports.DecisionRepository
	}

	// ExtContextRepoFactory provides access to the context repository within a transaction.
	ExtContextRepoFactory interface {
		ExtContextRepository() ports.ExtContextRepository
	}

	// ActivityRepoFactory provides access to the activity repository within a transaction.
	ActivityRepoFactory interface {
		ActivityRepository() ports.ActivityRepository
	}

	// CaseUoW manages transactions for case writes. Every case write also
	// records activity, and case creation verifies its portfolio.
	CaseUoW interface {
		TxManager
		CaseRepoFactory
		PortfolioRepoFactory
		ActivityRepoFactory
	}

	// CaseUoWFactory creates new case unit of work instances.
	CaseUoWFactory interface {
		Create() CaseUoW
	}

	// ActionUoW manages transactions for action writes; the owning case is
	// read in the same transaction.
	ActionUoW interface {
		TxManager
		ActionRepoFactory
		CaseRepoFactory
		ActivityRepoFactory
	}

	// ActionUoWFactory creates new action unit of work instances.
	ActionUoWFactory interface {
		Create() ActionUoW
	}

	// PortfolioUoW manages transactions for portfolio writes.
	PortfolioUoW interface {
		TxManager
		PortfolioRepoFactory
		ActivityRepoFactory
	}

	// PortfolioUoWFactory creates new portfolio unit of work instances.
	PortfolioUoWFactory interface {
		Create() PortfolioUoW
	}

	// DecisionUoW manages transactions for decision writes; the owning case
	// is read in the same transaction.
	DecisionUoW interface {
		TxManager
		DecisionRepoFactory
		CaseRepoFactory
		ActivityRepoFactory
	}

	// DecisionUoWFactory creates new decision unit of work instances.
	DecisionUoWFactory interface {
		Create() DecisionUoW
	}

	// ExtContextUoW manages transactions for vendor/HOA context writes; the
	// owning case is read in the same transaction.
	ExtContextUoW interface {
		TxManager
		ExtContextRepoFactory
		CaseRepoFactory
		ActivityRepoFactory
	}

	// ExtContextUoWFactory creates new context unit of work instances.
	ExtContextUoWFactory interface {
		Create() ExtContextUoW
	}

	// OwnerReminderUoW manages transactions for the reminder sweep, which
	// only writes activity rows.
	OwnerReminderUoW interface {
		TxManager
		ActivityRepoFactory
	}

	// OwnerReminderUoWFactory creates new reminder unit of work instances.
	OwnerReminderUoWFactory interface {
		Create() OwnerReminderUoW
	}
)
