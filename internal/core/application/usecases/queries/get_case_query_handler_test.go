package queries_test

import (
	"context"
	"testing"
	"time"

	"concierge/internal/adapters/out/postgres/caserepo"
	"concierge/internal/core/application/usecases/queries"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetCaseQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetCaseQueryHandler
}

func (suite *GetCaseQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&caserepo.CaseDTO{}))

	suite.handler = queries.NewGetCaseQueryHandler(db)
}

func (suite *GetCaseQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetCaseQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE cases").Error)
}

func (suite *GetCaseQueryHandlerTestSuite) TestHandle_ExistingCase_ReturnsReadModel() {
	orgID := kernel.NewUUID()
	caseID := kernel.NewUUID()
	portfolioID := kernel.NewUUID()

	dto := caserepo.CaseDTO{
		ID:          caseID.Bytes(),
		OrgID:       orgID.Bytes(),
		PortfolioID: portfolioID.Bytes(),
		PropertyRef: "unit-204",
		Title:       "Fence repair after storm",
		Summary:     "North fence section leaning",
		Priority:    concase.PriorityHigh.String(),
		Status:      concase.InProgress.String(),
		AssigneeRef: "concierge-7",
		Tags:        []string{"fence", "storm"},
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	query, err := queries.NewGetCaseQuery(orgID, caseID)
	suite.Require().NoError(err)

	resp, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(caseID, resp.ID)
	suite.Equal(orgID, resp.OrgID)
	suite.Equal(portfolioID, resp.PortfolioID)
	suite.Equal("unit-204", resp.PropertyRef)
	suite.Equal("Fence repair after storm", resp.Title)
	suite.Equal(concase.PriorityHigh.String(), resp.Priority)
	suite.Equal(concase.InProgress.String(), resp.Status)
	suite.Equal("concierge-7", resp.AssigneeRef)
	suite.Equal([]string{"fence", "storm"}, resp.Tags)
}

func (suite *GetCaseQueryHandlerTestSuite) TestHandle_OtherOrganization_ReturnsNotFoundError() {
	caseID := kernel.NewUUID()
	dto := caserepo.CaseDTO{
		ID:          caseID.Bytes(),
		OrgID:       kernel.NewUUID().Bytes(),
		PortfolioID: kernel.NewUUID().Bytes(),
		PropertyRef: "unit-1",
		Title:       "Other org case",
		Priority:    concase.PriorityNormal.String(),
		Status:      concase.Intake.String(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)

	query, err := queries.NewGetCaseQuery(kernel.NewUUID(), caseID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetCaseQueryHandlerTestSuite) TestHandle_SoftDeletedCase_ReturnsNotFoundError() {
	orgID := kernel.NewUUID()
	caseID := kernel.NewUUID()
	dto := caserepo.CaseDTO{
		ID:          caseID.Bytes(),
		OrgID:       orgID.Bytes(),
		PortfolioID: kernel.NewUUID().Bytes(),
		PropertyRef: "unit-1",
		Title:       "Deleted case",
		Priority:    concase.PriorityNormal.String(),
		Status:      concase.Intake.String(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	suite.Require().NoError(suite.db.Delete(&dto).Error)

	query, err := queries.NewGetCaseQuery(orgID, caseID)
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestGetCaseQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetCaseQueryHandlerTestSuite))
}
