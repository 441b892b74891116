package commands_test

import (
	"context"
	"testing"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPutVendorContextCommand(t *testing.T) {
	cmd, err := commands.NewPutVendorContextCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		"vendor:acme", []string{"plumbing", "hvac"}, "dispatch@acme.example", "24h notice", "user:ana",
	)
	require.NoError(t, err)
	assert.Equal(t, "vendor:acme", cmd.VendorRef())
	assert.Equal(t, []string{"plumbing", "hvac"}, cmd.Trades())

	_, err = commands.NewPutVendorContextCommand(
		kernel.NewUUID(), kernel.NewUUID(), "", nil, "", "", "user:ana")
	assert.ErrorIs(t, err, extcontext.ErrVendorRefIsRequired)
}

func TestPutVendorContextCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	orgID := kernel.NewUUID()
	owner := intakeCase(t, orgID)

	cmd, err := commands.NewPutVendorContextCommand(
		owner.ID(), orgID, "vendor:acme", []string{"plumbing"}, "", "", "user:ana")
	require.NoError(t, err)

	caseRepo := new(MockCaseRepository)
	extRepo := new(MockExtContextRepository)
	activityRepo := new(MockActivityRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("SetTenant", ctx, orgID).Return(nil).Once(),
		uow.On("CaseRepository").Return(caseRepo).Once(),
		caseRepo.On("Get", mock.Anything, orgID, owner.ID()).Return(owner, nil).Once(),
		uow.On("ExtContextRepository").Return(extRepo).Once(),
		extRepo.On("PutVendorContext", mock.Anything, mock.AnythingOfType("*extcontext.VendorContext")).Return(nil).Once(),
		uow.On("ActivityRepository").Return(activityRepo).Once(),
		activityRepo.On("Record", mock.Anything, mock.AnythingOfType("*activity.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockExtContextUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPutVendorContextCommandHandler(factory, allowAll())
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
	extRepo.AssertExpectations(t)
}
