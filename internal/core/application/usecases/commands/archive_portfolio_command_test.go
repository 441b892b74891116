package commands_test

import (
	"context"
	"testing"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/domain/model/portfolio"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestArchivePortfolioCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	portfolioID := kernel.NewUUID()

	pf, err := portfolio.NewPortfolio(portfolioID, orgID, "North District", 12)
	require.NoError(t, err)

	cmd, err := commands.NewArchivePortfolioCommand(portfolioID, orgID, "user:ana")
	require.NoError(t, err)

	pfRepo := new(MockPortfolioRepository)
	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("PortfolioRepository").Return(pfRepo).Once(),
		pfRepo.On("Get", mock.Anything, orgID, portfolioID).Return(pf, nil).Once(),
		pfRepo.On("Update", mock.Anything, pf).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Record", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPortfolioUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchivePortfolioCommandHandler(factory, allowAll())
	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, pf.IsArchived())
	uow.AssertExpectations(t)
	pfRepo.AssertExpectations(t)
}

func TestArchivePortfolioCommandHandler_Handle_AlreadyArchived(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	portfolioID := kernel.NewUUID()

	pf, err := portfolio.RestorePortfolio(portfolioID, orgID, "North District", 12, true)
	require.NoError(t, err)

	cmd, err := commands.NewArchivePortfolioCommand(portfolioID, orgID, "user:ana")
	require.NoError(t, err)

	pfRepo := new(MockPortfolioRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("PortfolioRepository").Return(pfRepo).Once(),
		pfRepo.On("Get", mock.Anything, orgID, portfolioID).Return(pf, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPortfolioUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewArchivePortfolioCommandHandler(factory, allowAll())
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}
