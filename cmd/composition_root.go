package cmd

import (
	"log/slog"
	"os"

	httpin "concierge/internal/adapters/in/http"
	"concierge/internal/adapters/out/policy"
	"concierge/internal/adapters/out/postgres"
	"concierge/internal/adapters/out/workflow"
	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/application/usecases/queries"
	"concierge/internal/core/ports"
	"concierge/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	authorizer ports.PolicyAuthorizer
	workflows  ports.WorkflowRunner
	config     Config
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		authorizer: policy.NewClient(config.PolicyEngineURL),
		workflows:  workflow.NewClient(config.WorkflowEngineURL),
		config:     config,
	}
}

// CreateHTTPServer wires every command and query handler into the echo
// server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.ServerHandlers{
		CreateCase:          c.CreateCreateCaseCommandHandler(),
		UpdateCase:          c.CreateUpdateCaseCommandHandler(),
		ChangeCaseStatus:    c.CreateChangeCaseStatusCommandHandler(),
		DeleteCase:          c.CreateDeleteCaseCommandHandler(),
		CreatePortfolio:     c.CreateCreatePortfolioCommandHandler(),
		ArchivePortfolio:    c.CreateArchivePortfolioCommandHandler(),
		CreateAction:        c.CreateCreateActionCommandHandler(),
		ChangeActionStatus:  c.CreateChangeActionStatusCommandHandler(),
		RecordDecision:      c.CreateRecordDecisionCommandHandler(),
		PutVendorContext:    c.CreatePutVendorContextCommandHandler(),
		PutHOAContext:       c.CreatePutHOAContextCommandHandler(),
		DeleteVendorContext: c.CreateDeleteVendorContextCommandHandler(),

		GetCase:          queries.NewGetCaseQueryHandler(c.gormDB),
		ListCases:        queries.NewListCasesQueryHandler(c.gormDB),
		ListStaffCases:   queries.NewListStaffCasesQueryHandler(c.gormDB),
		ListCaseActivity: queries.NewListCaseActivityQueryHandler(c.gormDB),
		ListActions:      queries.NewListActionsQueryHandler(c.gormDB),
		ListPortfolios:   queries.NewListPortfoliosQueryHandler(c.gormDB),
		ListDecisions:    queries.NewListDecisionsQueryHandler(c.gormDB),
		GetVendorContext: queries.NewGetVendorContextQueryHandler(c.gormDB),
		GetHOAContext:    queries.NewGetHOAContextQueryHandler(c.gormDB),
	})
}

// CreateJobManager wires the background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return jobs.NewJobManager(
		c.CreateSendOwnerRemindersCommandHandler(),
		c.config.OwnerReminderStaleAfter,
		logger,
	)
}

func (c *CompositionRoot) CreateCreateCaseCommandHandler() commands.CreateCaseCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCaseCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateUpdateCaseCommandHandler() commands.UpdateCaseCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCaseCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateChangeCaseStatusCommandHandler() commands.ChangeCaseStatusCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeCaseStatusCommandHandler(f, c.authorizer, c.workflows)
}

func (c *CompositionRoot) CreateDeleteCaseCommandHandler() commands.DeleteCaseCommandHandler {
	var f commands.CaseUoWFactory = FuncCaseUoWFactory(func() commands.CaseUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCaseCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateCreatePortfolioCommandHandler() commands.CreatePortfolioCommandHandler {
	var f commands.PortfolioUoWFactory = FuncPortfolioUoWFactory(func() commands.PortfolioUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePortfolioCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateArchivePortfolioCommandHandler() commands.ArchivePortfolioCommandHandler {
	var f commands.PortfolioUoWFactory = FuncPortfolioUoWFactory(func() commands.PortfolioUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchivePortfolioCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateCreateActionCommandHandler() commands.CreateActionCommandHandler {
	var f commands.ActionUoWFactory = FuncActionUoWFactory(func() commands.ActionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateActionCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateChangeActionStatusCommandHandler() commands.ChangeActionStatusCommandHandler {
	var f commands.ActionUoWFactory = FuncActionUoWFactory(func() commands.ActionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeActionStatusCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateRecordDecisionCommandHandler() commands.RecordDecisionCommandHandler {
	var f commands.DecisionUoWFactory = FuncDecisionUoWFactory(func() commands.DecisionUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordDecisionCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreatePutVendorContextCommandHandler() commands.PutVendorContextCommandHandler {
	var f commands.ExtContextUoWFactory = FuncExtContextUoWFactory(func() commands.ExtContextUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPutVendorContextCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreatePutHOAContextCommandHandler() commands.PutHOAContextCommandHandler {
	var f commands.ExtContextUoWFactory = FuncExtContextUoWFactory(func() commands.ExtContextUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPutHOAContextCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateDeleteVendorContextCommandHandler() commands.DeleteVendorContextCommandHandler {
	var f commands.ExtContextUoWFactory = FuncExtContextUoWFactory(func() commands.ExtContextUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteVendorContextCommandHandler(f, c.authorizer)
}

func (c *CompositionRoot) CreateSendOwnerRemindersCommandHandler() commands.SendOwnerRemindersCommandHandler {
	var f commands.OwnerReminderUoWFactory = FuncOwnerReminderUoWFactory(func() commands.OwnerReminderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSendOwnerRemindersCommandHandler(f, postgres.NewGormStaleCaseFinder(c.gormDB))
}

type FuncCaseUoWFactory func() commands.CaseUoW

func (f FuncCaseUoWFactory) Create() commands.CaseUoW {
	return f()
}

type FuncActionUoWFactory func() commands.ActionUoW

func (f FuncActionUoWFactory) Create() commands.ActionUoW {
	return f()
}

type FuncPortfolioUoWFactory func() commands.PortfolioUoW

func (f FuncPortfolioUoWFactory) Create() commands.PortfolioUoW {
	return f()
}

type FuncDecisionUoWFactory func() commands.DecisionUoW

func (f FuncDecisionUoWFactory) Create() commands.DecisionUoW {
	return f()
}

type FuncExtContextUoWFactory func() commands.ExtContextUoW

func (f FuncExtContextUoWFactory) Create() commands.ExtContextUoW {
	return f()
}

type FuncOwnerReminderUoWFactory func() commands.OwnerReminderUoW

func (f FuncOwnerReminderUoWFactory) Create() commands.OwnerReminderUoW {
	return f()
}
