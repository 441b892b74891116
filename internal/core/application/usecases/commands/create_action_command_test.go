package commands_test

import (
	"context"
	"testing"
	"time"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateActionCommand(t *testing.T) {
	due := time.Now().Add(48 * time.Hour)
	cmd, err := commands.NewCreateActionCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Dispatch plumber", "shutoff valve first", "vendor:acme", &due, "user:ana",
	)
	require.NoError(t, err)
	assert.Equal(t, "Dispatch plumber", cmd.Title())
	assert.Equal(t, "vendor:acme", cmd.AssigneeRef())
	require.NotNil(t, cmd.DueAt())
	assert.True(t, cmd.DueAt().Equal(due))

	_, err = commands.NewCreateActionCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", "", "", nil, "user:ana")
	assert.ErrorIs(t, err, action.ErrTitleIsRequired)
}

func TestCreateActionCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	owner := intakeCase(t, orgID)

	cmd, err := commands.NewCreateActionCommand(
		kernel.NewUUID(), orgID, owner.ID(), "Dispatch plumber", "", "", nil, "user:ana")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	actionRepo := new(MockActionRepository)
	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", mock.Anything, orgID, owner.ID()).Return(owner, nil).Once(),
		uow.On("ActionRepository").Return(actionRepo).Once(),
		actionRepo.On("Add", mock.Anything, mock.AnythingOfType("*action.Action")).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Record", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockActionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateActionCommandHandler(factory, allowAll())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	actionRepo.AssertExpectations(t)
}

func TestCreateActionCommandHandler_Handle_TerminalCase(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	owner := intakeCase(t, orgID)
	require.NoError(t, owner.ChangeStatus(concase.Cancelled))

	cmd, err := commands.NewCreateActionCommand(
		kernel.NewUUID(), orgID, owner.ID(), "Dispatch plumber", "", "", nil, "user:ana")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", mock.Anything, orgID, owner.ID()).Return(owner, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockActionUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateActionCommandHandler(factory, allowAll())
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertExpectations(t)
}
