package commands_test

import (
	"context"
	"time"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/activity"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/decision"
	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/core/domain/model/portfolio"
	"concierge/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCaseRepository struct{ mock.Mock }

func (m *MockCaseRepository) Add(ctx context.Context, c *concase.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCaseRepository) Update(ctx context.Context, c *concase.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCaseRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*concase.Case, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*concase.Case), args.Error(1)
}
func (m *MockCaseRepository) Delete(ctx context.Context, orgID, id kernel.UUID) error {
	args := m.Called(ctx, orgID, id)
	return args.Error(0)
}
func (m *MockCaseRepository) AddHistoryEntry(ctx context.Context, entry *concase.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockActionRepository struct{ mock.Mock }

func (m *MockActionRepository) Add(ctx context.Context, a *action.Action) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockActionRepository) Update(ctx context.Context, a *action.Action) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}
func (m *MockActionRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*action.Action, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*action.Action), args.Error(1)
}

type MockPortfolioRepository struct{ mock.Mock }

func (m *MockPortfolioRepository) Add(ctx context.Context, p *portfolio.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPortfolioRepository) Update(ctx context.Context, p *portfolio.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPortfolioRepository) Get(ctx context.Context, orgID, id kernel.UUID) (*portfolio.Portfolio, error) {
	args := m.Called(ctx, orgID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portfolio.Portfolio), args.Error(1)
}

type MockDecisionRepository struct{ mock.Mock }

func (m *MockDecisionRepository) Add(ctx context.Context, d *decision.Decision) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

type MockExtContextRepository struct{ mock.Mock }

func (m *MockExtContextRepository) PutVendorContext(ctx context.Context, v *extcontext.VendorContext) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}
func (m *MockExtContextRepository) GetVendorContext(ctx context.Context, orgID, caseID kernel.UUID) (*extcontext.VendorContext, error) {
	args := m.Called(ctx, orgID, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extcontext.VendorContext), args.Error(1)
}
func (m *MockExtContextRepository) DeleteVendorContext(ctx context.Context, orgID, caseID kernel.UUID) error {
	args := m.Called(ctx, orgID, caseID)
	return args.Error(0)
}
func (m *MockExtContextRepository) PutHOAContext(ctx context.Context, h *extcontext.HOAContext) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}
func (m *MockExtContextRepository) GetHOAContext(ctx context.Context, orgID, caseID kernel.UUID) (*extcontext.HOAContext, error) {
	args := m.Called(ctx, orgID, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*extcontext.HOAContext), args.Error(1)
}

type MockActivityRepository struct{ mock.Mock }

func (m *MockActivityRepository) Record(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockUoW implements every command UoW interface so a single mock serves
// all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) SetTenant(ctx context.Context, orgID kernel.UUID) error {
	args := m.Called(ctx, orgID)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) CaseRepository() ports.CaseRepository {
	args := m.Called()
	return args.Get(0).(ports.CaseRepository)
}
func (m *MockUoW) ActionRepository() ports.ActionRepository {
	args := m.Called()
	return args.Get(0).(ports.ActionRepository)
}
func (m *MockUoW) PortfolioRepository() ports.PortfolioRepository {
	args := m.Called()
	return args.Get(0).(ports.PortfolioRepository)
}
func (m *MockUoW) DecisionRepository() ports.DecisionRepository {
	args := m.Called()
	return args.Get(0).(ports.DecisionRepository)
}
func (m *MockUoW) ExtContextRepository() ports.ExtContextRepository {
	args := m.Called()
	return args.Get(0).(ports.ExtContextRepository)
}
func (m *MockUoW) ActivityRepository() ports.ActivityRepository {
	args := m.Called()
	return args.Get(0).(ports.ActivityRepository)
}

type MockCaseUoWFactory struct{ mock.Mock }

func (m *MockCaseUoWFactory) Create() commands.CaseUoW {
	args := m.Called()
	return args.Get(0).(commands.CaseUoW)
}

type MockActionUoWFactory struct{ mock.Mock }

func (m *MockActionUoWFactory) Create() commands.ActionUoW {
	args := m.Called()
	return args.Get(0).(commands.ActionUoW)
}

type MockPortfolioUoWFactory struct{ mock.Mock }

func (m *MockPortfolioUoWFactory) Create() commands.PortfolioUoW {
	args := m.Called()
	return args.Get(0).(commands.PortfolioUoW)
}

type MockDecisionUoWFactory struct{ mock.Mock }

func (m *MockDecisionUoWFactory) Create() commands.DecisionUoW {
	args := m.Called()
	return args.Get(0).(commands.DecisionUoW)
}

type MockExtContextUoWFactory struct{ mock.Mock }

func (m *MockExtContextUoWFactory) Create() commands.ExtContextUoW {
	args := m.Called()
	return args.Get(0).(commands.ExtContextUoW)
}

type MockOwnerReminderUoWFactory struct{ mock.Mock }

func (m *MockOwnerReminderUoWFactory) Create() commands.OwnerReminderUoW {
	args := m.Called()
	return args.Get(0).(commands.OwnerReminderUoW)
}

type MockStaleOwnerCaseFinder struct{ mock.Mock }

func (m *MockStaleOwnerCaseFinder) FindStaleOwnerCases(ctx context.Context, updatedBefore time.Time) ([]commands.StaleOwnerCase, error) {
	args := m.Called(ctx, updatedBefore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]commands.StaleOwnerCase), args.Error(1)
}

type MockPolicyAuthorizer struct{ mock.Mock }

func (m *MockPolicyAuthorizer) Authorize(ctx context.Context, req ports.AuthzRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockWorkflowRunner struct{ mock.Mock }

func (m *MockWorkflowRunner) Run(ctx context.Context, name, idempotencyKey string, input map[string]any) (string, error) {
	args := m.Called(ctx, name, idempotencyKey, input)
	return args.String(0), args.Error(1)
}

func allowAll() *MockPolicyAuthorizer {
	a := new(MockPolicyAuthorizer)
	a.On("Authorize", mock.Anything, mock.Anything).Return(nil)
	return a
}
