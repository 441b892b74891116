package postgres_test

import (
	"context"
	"testing"
	"time"

	"concierge/internal/adapters/out/postgres"
	"concierge/internal/adapters/out/postgres/caserepo"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration tests for the GORM
// unit of work using PostgreSQL containers.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&caserepo.CaseDTO{}, &caserepo.HistoryEntryDTO{}))
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cases, case_history").Error)
	suite.factory = postgres.NewGormUnitOfWorkFactory(suite.db)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsWrites() {
	ctx := context.Background()
	orgID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SetTenant(ctx, orgID))

	testCase := suite.createTestCase(orgID)
	suite.Require().NoError(uow.CaseRepository().Add(ctx, testCase))
	suite.Require().NoError(uow.Commit(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&caserepo.CaseDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsWrites() {
	ctx := context.Background()
	orgID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SetTenant(ctx, orgID))

	testCase := suite.createTestCase(orgID)
	suite.Require().NoError(uow.CaseRepository().Add(ctx, testCase))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&caserepo.CaseDTO{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSetTenant_ScopedToTransaction() {
	ctx := context.Background()
	orgID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SetTenant(ctx, orgID))

	// SET LOCAL is visible inside the transaction.
	var inTx string
	gormUow, ok := uow.(*postgres.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Require().NoError(
		gormUow.Conn().Raw("SELECT current_setting('app.org_id', true)").Scan(&inTx).Error)
	suite.Equal(orgID.String(), inTx)

	suite.Require().NoError(uow.Commit(ctx))

	// After commit the setting is gone from the session.
	var afterCommit *string
	suite.Require().NoError(
		suite.db.Raw("SELECT current_setting('app.org_id', true)").Scan(&afterCommit).Error)
	if afterCommit != nil {
		suite.Empty(*afterCommit)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSetTenant_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.SetTenant(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestSetTenant_InvalidOrgID_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	var zero kernel.UUID
	suite.Require().Error(uow.SetTenant(ctx, zero))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	uow := suite.factory.Create()

	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_IsNoOp() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

// createTestCase creates a basic test case with default values.
func (suite *UnitOfWorkIntegrationTestSuite) createTestCase(orgID kernel.UUID) *concase.Case {
	testCase, err := concase.NewCase(
		kernel.NewUUID(),
		orgID,
		kernel.NewUUID(),
		"unit-101",
		"Gutter cleaning",
		"",
		concase.PriorityLow,
	)
	suite.Require().NoError(err)
	return testCase
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
