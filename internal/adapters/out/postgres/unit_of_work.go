// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work owns one database transaction, binds it to
// the acting organization for row-level security, and hands out
// repositories that share the transaction. Client code manages the
// transaction lifecycle explicitly:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.SetTenant(ctx, orgID); err != nil {
//	    return err
//	}
//	if err := uow.CaseRepository().Add(ctx, c); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
package postgres

import (
	"context"

	"concierge/internal/adapters/out/postgres/actionrepo"
	"concierge/internal/adapters/out/postgres/activityrepo"
	"concierge/internal/adapters/out/postgres/caserepo"
	"concierge/internal/adapters/out/postgres/contextrepo"
	"concierge/internal/adapters/out/postgres/decisionrepo"
	"concierge/internal/adapters/out/postgres/portfoliorepo"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance so
// concurrent requests stay isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the
// repositories. It tracks every aggregate written during the transaction,
// which enables post-commit processing such as outbox publishing.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. Calling Begin twice on the same instance is
// a no-op rather than a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// SetTenant binds the transaction to an organization. set_config with
// is_local=true scopes the setting to the transaction, so the
// row-level-security policies on every table see app.org_id until commit or
// rollback. SET LOCAL would read the same but cannot take a bind parameter,
// so the value goes through set_config.
func (uow *GormUnitOfWork) SetTenant(ctx context.Context, orgID kernel.UUID) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	if err := orgID.Validate(); err != nil {
		return err
	}

	return uow.tx.WithContext(ctx).
		Exec("SELECT set_config('app.org_id', ?, true)", orgID.String()).Error
}

// Commit finalizes the transaction. After commit the unit of work cannot be
// reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// Conn returns the active transaction, or the connection pool when no
// transaction is open.
func (uow *GormUnitOfWork) Conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// CaseRepository returns a case repository bound to the current transaction.
func (uow *GormUnitOfWork) CaseRepository() ports.CaseRepository {
	return caserepo.NewGormCaseRepository(uow.Conn(), uow)
}

// ActionRepository returns an action repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ActionRepository() ports.ActionRepository {
	return actionrepo.NewGormActionRepository(uow.Conn(), uow)
}

// PortfolioRepository returns a portfolio repository bound to the current
// transaction.
func (uow *GormUnitOfWork) PortfolioRepository() ports.PortfolioRepository {
	return portfoliorepo.NewGormPortfolioRepository(uow.Conn(), uow)
}

// DecisionRepository returns a decision repository bound to the current
// transaction.
func (uow *GormUnitOfWork) DecisionRepository() ports.DecisionRepository {
	return decisionrepo.NewGormDecisionRepository(uow.Conn(), uow)
}

// ExtContextRepository returns a vendor/HOA context repository bound to the
// current transaction.
func (uow *GormUnitOfWork) ExtContextRepository() ports.ExtContextRepository {
	return contextrepo.NewGormExtContextRepository(uow.Conn())
}

// ActivityRepository returns an activity repository bound to the current
// transaction.
func (uow *GormUnitOfWork) ActivityRepository() ports.ActivityRepository {
	return activityrepo.NewGormActivityRepository(uow.Conn())
}

// TrackAggregate registers a domain aggregate as modified within this unit
// of work. Repository implementations call this on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
