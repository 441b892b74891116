package commands_test

import (
	"context"
	"testing"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteCaseCommand(t *testing.T) {
	caseID := kernel.NewUUID()
	orgID := kernel.NewUUID()

	cmd, err := commands.NewDeleteCaseCommand(caseID, orgID, "user:ana")
	require.NoError(t, err)
	assert.Equal(t, caseID, cmd.CaseID())
	assert.Equal(t, orgID, cmd.OrgID())

	_, err = commands.NewDeleteCaseCommand(kernel.UUID{}, orgID, "user:ana")
	assert.Error(t, err)

	_, err = commands.NewDeleteCaseCommand(caseID, orgID, "")
	assert.ErrorIs(t, err, commands.ErrActorRefIsRequired)
}

func TestDeleteCaseCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	aggregate := intakeCase(t, orgID)

	cmd, err := commands.NewDeleteCaseCommand(aggregate.ID(), orgID, "user:ana")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", mock.Anything, orgID, aggregate.ID()).Return(aggregate, nil).Once(),
		caseRepo.On("Delete", mock.Anything, orgID, aggregate.ID()).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Record", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCaseCommandHandler(factory, allowAll())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	caseRepo.AssertExpectations(t)
}

func TestDeleteCaseCommandHandler_Handle_CrossOrgMissIsNotFound(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	caseID := kernel.NewUUID()

	cmd, err := commands.NewDeleteCaseCommand(caseID, orgID, "user:ana")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", mock.Anything, orgID, caseID).
			Return(nil, errs.NewObjectNotFoundError("caseID", caseID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCaseUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCaseCommandHandler(factory, allowAll())
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
