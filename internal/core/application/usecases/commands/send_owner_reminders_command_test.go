package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSendOwnerRemindersCommand(t *testing.T) {
	t.Run("valid_window", func(t *testing.T) {
		cmd, err := commands.NewSendOwnerRemindersCommand(72 * time.Hour)

		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, cmd.StaleAfter())
		require.NoError(t, cmd.Validate())
	})

	t.Run("zero_window_rejected", func(t *testing.T) {
		_, err := commands.NewSendOwnerRemindersCommand(0)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("negative_window_rejected", func(t *testing.T) {
		_, err := commands.NewSendOwnerRemindersCommand(-time.Hour)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("window_over_a_month_rejected", func(t *testing.T) {
		_, err := commands.NewSendOwnerRemindersCommand(45 * 24 * time.Hour)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero_value_command_fails_validation", func(t *testing.T) {
		var cmd commands.SendOwnerRemindersCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrSendOwnerRemindersCommandIsNotConstructed)
	})
}

func TestSendOwnerRemindersCommandHandler_Handle_NoStaleCases(t *testing.T) {
	ctx := context.Background()

	cmd, err := commands.NewSendOwnerRemindersCommand(72 * time.Hour)
	require.NoError(t, err)

	finder := new(MockStaleOwnerCaseFinder)
	finder.On("FindStaleOwnerCases", ctx, mock.AnythingOfType("time.Time")).
		Return([]commands.StaleOwnerCase{}, nil).Once()

	// No unit of work must be opened when nothing is stale.
	factory := new(MockOwnerReminderUoWFactory)

	h := commands.NewSendOwnerRemindersCommandHandler(factory, finder)
	require.NoError(t, h.Handle(ctx, cmd))
	finder.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSendOwnerRemindersCommandHandler_Handle_RecordsPerOrg(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	firstCase := kernel.NewUUID()
	secondCase := kernel.NewUUID()

	cmd, err := commands.NewSendOwnerRemindersCommand(72 * time.Hour)
	require.NoError(t, err)

	finder := new(MockStaleOwnerCaseFinder)
	finder.On("FindStaleOwnerCases", ctx, mock.AnythingOfType("time.Time")).
		Return([]commands.StaleOwnerCase{
			{CaseID: firstCase, OrgID: orgID},
			{CaseID: secondCase, OrgID: orgID},
		}, nil).Once()

	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Record", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil).Twice(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOwnerReminderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSendOwnerRemindersCommandHandler(factory, finder)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestSendOwnerRemindersCommandHandler_Handle_OneOrgFailing_OthersSucceed(t *testing.T) {
	ctx := context.Background()
	healthyOrg := kernel.NewUUID()
	brokenOrg := kernel.NewUUID()
	dbDown := errors.New("connection refused")

	cmd, err := commands.NewSendOwnerRemindersCommand(72 * time.Hour)
	require.NoError(t, err)

	finder := new(MockStaleOwnerCaseFinder)
	finder.On("FindStaleOwnerCases", ctx, mock.AnythingOfType("time.Time")).
		Return([]commands.StaleOwnerCase{
			{CaseID: kernel.NewUUID(), OrgID: healthyOrg},
			{CaseID: kernel.NewUUID(), OrgID: brokenOrg},
		}, nil).Once()

	activityRepo := new(MockActivityRepository)
	activityRepo.On("Record", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("SetTenant", ctx, healthyOrg).Return(nil)
	uow.On("SetTenant", ctx, brokenOrg).Return(dbDown)
	uow.On("ActivityRepository").Return(activityRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOwnerReminderUoWFactory)
	factory.On("Create").Return(uow).Twice()

	h := commands.NewSendOwnerRemindersCommandHandler(factory, finder)
	err = h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, dbDown)
	uow.AssertNumberOfCalls(t, "Commit", 1)
}

func TestSendOwnerRemindersCommandHandler_Handle_FinderFailure(t *testing.T) {
	ctx := context.Background()
	scanErr := errors.New("relation does not exist")

	cmd, err := commands.NewSendOwnerRemindersCommand(72 * time.Hour)
	require.NoError(t, err)

	finder := new(MockStaleOwnerCaseFinder)
	finder.On("FindStaleOwnerCases", ctx, mock.AnythingOfType("time.Time")).
		Return(nil, scanErr).Once()

	h := commands.NewSendOwnerRemindersCommandHandler(new(MockOwnerReminderUoWFactory), finder)
	assert.ErrorIs(t, h.Handle(ctx, cmd), scanErr)
}
