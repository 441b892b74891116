// Package http is the inbound HTTP adapter: an echo server exposing the
// /api/v1 surface. Handlers translate wire requests into commands and
// queries, and application errors back into HTTP statuses; no business
// rules live here.
package http

import (
	"net/http"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/application/usecases/queries"
	"concierge/internal/core/domain/model/action"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/decision"
	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createCaseHandler          commands.CreateCaseCommandHandler
	updateCaseHandler          commands.UpdateCaseCommandHandler
	changeCaseStatusHandler    commands.ChangeCaseStatusCommandHandler
	deleteCaseHandler          commands.DeleteCaseCommandHandler
	createPortfolioHandler     commands.CreatePortfolioCommandHandler
	archivePortfolioHandler    commands.ArchivePortfolioCommandHandler
	createActionHandler        commands.CreateActionCommandHandler
	changeActionStatusHandler  commands.ChangeActionStatusCommandHandler
	recordDecisionHandler      commands.RecordDecisionCommandHandler
	putVendorContextHandler    commands.PutVendorContextCommandHandler
	putHOAContextHandler       commands.PutHOAContextCommandHandler
	deleteVendorContextHandler commands.DeleteVendorContextCommandHandler

	getCaseHandler          queries.GetCaseQueryHandler
	listCasesHandler        queries.ListCasesQueryHandler
	listStaffCasesHandler   queries.ListStaffCasesQueryHandler
	listCaseActivityHandler queries.ListCaseActivityQueryHandler
	listActionsHandler      queries.ListActionsQueryHandler
	listPortfoliosHandler   queries.ListPortfoliosQueryHandler
	listDecisionsHandler    queries.ListDecisionsQueryHandler
	getVendorContextHandler queries.GetVendorContextQueryHandler
	getHOAContextHandler    queries.GetHOAContextQueryHandler
}

// ServerHandlers bundles the use-case handlers the server dispatches to.
type ServerHandlers struct {
	CreateCase          commands.CreateCaseCommandHandler
	UpdateCase          commands.UpdateCaseCommandHandler
	ChangeCaseStatus    commands.ChangeCaseStatusCommandHandler
	DeleteCase          commands.DeleteCaseCommandHandler
	CreatePortfolio     commands.CreatePortfolioCommandHandler
	ArchivePortfolio    commands.ArchivePortfolioCommandHandler
	CreateAction        commands.CreateActionCommandHandler
	ChangeActionStatus  commands.ChangeActionStatusCommandHandler
	RecordDecision      commands.RecordDecisionCommandHandler
	PutVendorContext    commands.PutVendorContextCommandHandler
	PutHOAContext       commands.PutHOAContextCommandHandler
	DeleteVendorContext commands.DeleteVendorContextCommandHandler

	GetCase          queries.GetCaseQueryHandler
	ListCases        queries.ListCasesQueryHandler
	ListStaffCases   queries.ListStaffCasesQueryHandler
	ListCaseActivity queries.ListCaseActivityQueryHandler
	ListActions      queries.ListActionsQueryHandler
	ListPortfolios   queries.ListPortfoliosQueryHandler
	ListDecisions    queries.ListDecisionsQueryHandler
	GetVendorContext queries.GetVendorContextQueryHandler
	GetHOAContext    queries.GetHOAContextQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		createCaseHandler:          handlers.CreateCase,
		updateCaseHandler:          handlers.UpdateCase,
		changeCaseStatusHandler:    handlers.ChangeCaseStatus,
		deleteCaseHandler:          handlers.DeleteCase,
		createPortfolioHandler:     handlers.CreatePortfolio,
		archivePortfolioHandler:    handlers.ArchivePortfolio,
		createActionHandler:        handlers.CreateAction,
		changeActionStatusHandler:  handlers.ChangeActionStatus,
		recordDecisionHandler:      handlers.RecordDecision,
		putVendorContextHandler:    handlers.PutVendorContext,
		putHOAContextHandler:       handlers.PutHOAContext,
		deleteVendorContextHandler: handlers.DeleteVendorContext,
		getCaseHandler:             handlers.GetCase,
		listCasesHandler:           handlers.ListCases,
		listStaffCasesHandler:      handlers.ListStaffCases,
		listCaseActivityHandler:    handlers.ListCaseActivity,
		listActionsHandler:         handlers.ListActions,
		listPortfoliosHandler:      handlers.ListPortfolios,
		listDecisionsHandler:       handlers.ListDecisions,
		getVendorContextHandler:    handlers.GetVendorContext,
		getHOAContextHandler:       handlers.GetHOAContext,
	}
}

// RegisterRoutes mounts the API under /api/v1. Everything except the meta
// endpoints requires a bearer token; the staff view additionally requires
// the staff role.
func (s *Server) RegisterRoutes(e *echo.Echo, jwtSecret []byte) {
	e.GET("/health", s.Health)
	e.GET("/openapi.json", s.OpenAPISpec)

	api := e.Group("/api/v1", AuthMiddleware(jwtSecret))

	api.POST("/portfolios", s.CreatePortfolio)
	api.GET("/portfolios", s.ListPortfolios)
	api.POST("/portfolios/:id/archive", s.ArchivePortfolio)

	api.POST("/cases", s.CreateCase)
	api.GET("/cases", s.ListCases)
	api.GET("/cases/:id", s.GetCase)
	api.PATCH("/cases/:id", s.UpdateCase)
	api.POST("/cases/:id/status", s.ChangeCaseStatus)
	api.DELETE("/cases/:id", s.DeleteCase)
	api.GET("/cases/:id/activity", s.ListCaseActivity)

	api.POST("/cases/:id/actions", s.CreateAction)
	api.GET("/cases/:id/actions", s.ListActions)
	api.POST("/actions/:id/status", s.ChangeActionStatus)

	api.POST("/cases/:id/decisions", s.RecordDecision)
	api.GET("/cases/:id/decisions", s.ListDecisions)

	api.PUT("/cases/:id/vendor-context", s.PutVendorContext)
	api.GET("/cases/:id/vendor-context", s.GetVendorContext)
	api.DELETE("/cases/:id/vendor-context", s.DeleteVendorContext)
	api.PUT("/cases/:id/hoa-context", s.PutHOAContext)
	api.GET("/cases/:id/hoa-context", s.GetHOAContext)

	api.GET("/staff/cases", s.ListStaffCases, RequireStaff())
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}

// CreatePortfolio handles POST /api/v1/portfolios.
func (s *Server) CreatePortfolio(c echo.Context) error {
	var req createPortfolioRequest
	if err := c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	portfolioID := kernel.NewUUID()
	cmd, err := commands.NewCreatePortfolioCommand(portfolioID, org, req.Name, req.PropertyCount, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.createPortfolioHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: portfolioID.String()})
}

// ListPortfolios handles GET /api/v1/portfolios.
func (s *Server) ListPortfolios(c echo.Context) error {
	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewListPortfoliosQuery(org)
	if err != nil {
		return responseError(c, err)
	}

	portfolios, err := s.listPortfoliosHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	response := make([]portfolioResponse, len(portfolios))
	for i, p := range portfolios {
		response[i] = toPortfolioResponse(p)
	}
	return c.JSON(http.StatusOK, response)
}

// ArchivePortfolio handles POST /api/v1/portfolios/:id/archive.
func (s *Server) ArchivePortfolio(c echo.Context) error {
	portfolioID, err := pathID(c, "portfolioID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewArchivePortfolioCommand(portfolioID, org, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.archivePortfolioHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// CreateCase handles POST /api/v1/cases.
func (s *Server) CreateCase(c echo.Context) error {
	var req createCaseRequest
	if err := c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	portfolioID, err := kernel.UUIDFromString(req.PortfolioID)
	if err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("portfolioID", err))
	}

	priority, err := concase.PriorityFromString(req.Priority)
	if err != nil {
		return responseError(c, err)
	}

	caseID := kernel.NewUUID()
	cmd, err := commands.NewCreateCaseCommand(
		caseID, org, portfolioID, req.PropertyRef, req.Title, req.Summary, priority, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.createCaseHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: caseID.String()})
}

// GetCase handles GET /api/v1/cases/:id.
func (s *Server) GetCase(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewGetCaseQuery(org, caseID)
	if err != nil {
		return responseError(c, err)
	}

	resp, err := s.getCaseHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusOK, toCaseResponse(resp))
}

// ListCases handles GET /api/v1/cases.
func (s *Server) ListCases(c echo.Context) error {
	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	status, err := statusFilter(c)
	if err != nil {
		return responseError(c, err)
	}

	var portfolioID *kernel.UUID
	if raw := c.QueryParam("portfolio_id"); raw != "" {
		id, parseErr := kernel.UUIDFromString(raw)
		if parseErr != nil {
			return responseError(c, errs.NewValueIsInvalidErrorWithCause("portfolioID", parseErr))
		}
		portfolioID = &id
	}

	limit, err := limitParam(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewListCasesQuery(org, status, portfolioID, c.QueryParam("cursor"), limit)
	if err != nil {
		return responseError(c, err)
	}

	page, err := s.listCasesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusOK, toCasePageResponse(page))
}

// ListStaffCases handles GET /api/v1/staff/cases, the cross-organization
// staff view.
func (s *Server) ListStaffCases(c echo.Context) error {
	status, err := statusFilter(c)
	if err != nil {
		return responseError(c, err)
	}

	limit, err := limitParam(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewListStaffCasesQuery(status, c.QueryParam("cursor"), limit)
	if err != nil {
		return responseError(c, err)
	}

	page, err := s.listStaffCasesHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusOK, toStaffCasePageResponse(page))
}

// UpdateCase handles PATCH /api/v1/cases/:id.
func (s *Server) UpdateCase(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	var req updateCaseRequest
	if err = c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	priority, err := concase.PriorityFromString(req.Priority)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewUpdateCaseCommand(
		caseID, org, req.Title, req.Summary, priority, req.AssigneeRef, req.Tags, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.updateCaseHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ChangeCaseStatus handles POST /api/v1/cases/:id/status. Terminal targets
// require an Idempotency-Key header for the closeout workflow.
func (s *Server) ChangeCaseStatus(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	var req changeCaseStatusRequest
	if err = c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	target, err := concase.StatusFromString(req.Status)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewChangeCaseStatusCommand(
		caseID, org, target, req.Note, actorRef(c), c.Request().Header.Get("Idempotency-Key"))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.changeCaseStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteCase handles DELETE /api/v1/cases/:id.
func (s *Server) DeleteCase(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewDeleteCaseCommand(caseID, org, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.deleteCaseHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListCaseActivity handles GET /api/v1/cases/:id/activity.
func (s *Server) ListCaseActivity(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewListCaseActivityQuery(org, caseID)
	if err != nil {
		return responseError(c, err)
	}

	entries, err := s.listCaseActivityHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	response := make([]activityResponse, len(entries))
	for i, e := range entries {
		response[i] = toActivityResponse(e)
	}
	return c.JSON(http.StatusOK, response)
}

// CreateAction handles POST /api/v1/cases/:id/actions.
func (s *Server) CreateAction(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	var req createActionRequest
	if err = c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	actionID := kernel.NewUUID()
	cmd, err := commands.NewCreateActionCommand(
		actionID, org, caseID, req.Title, req.Detail, req.AssigneeRef, req.DueAt, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.createActionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: actionID.String()})
}

// ListActions handles GET /api/v1/cases/:id/actions.
func (s *Server) ListActions(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewListActionsQuery(org, caseID)
	if err != nil {
		return responseError(c, err)
	}

	actions, err := s.listActionsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	response := make([]actionResponse, len(actions))
	for i, a := range actions {
		response[i] = toActionResponse(a)
	}
	return c.JSON(http.StatusOK, response)
}

// ChangeActionStatus handles POST /api/v1/actions/:id/status.
func (s *Server) ChangeActionStatus(c echo.Context) error {
	actionID, err := pathID(c, "actionID")
	if err != nil {
		return responseError(c, err)
	}

	var req changeActionStatusRequest
	if err = c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	target, err := action.StatusFromString(req.Status)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewChangeActionStatusCommand(actionID, org, target, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.changeActionStatusHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// RecordDecision handles POST /api/v1/cases/:id/decisions.
func (s *Server) RecordDecision(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	var req recordDecisionRequest
	if err = c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	outcome, err := decision.OutcomeFromString(req.Outcome)
	if err != nil {
		return responseError(c, err)
	}

	decisionID := kernel.NewUUID()
	cmd, err := commands.NewRecordDecisionCommand(
		decisionID, org, caseID, outcome, req.Rationale, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.recordDecisionHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusCreated, idResponse{ID: decisionID.String()})
}

// ListDecisions handles GET /api/v1/cases/:id/decisions.
func (s *Server) ListDecisions(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewListDecisionsQuery(org, caseID)
	if err != nil {
		return responseError(c, err)
	}

	decisions, err := s.listDecisionsHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	response := make([]decisionResponse, len(decisions))
	for i, d := range decisions {
		response[i] = toDecisionResponse(d)
	}
	return c.JSON(http.StatusOK, response)
}

// PutVendorContext handles PUT /api/v1/cases/:id/vendor-context.
func (s *Server) PutVendorContext(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	var req putVendorContextRequest
	if err = c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewPutVendorContextCommand(
		caseID, org, req.VendorRef, req.Trades, req.ContactEmail, req.Notes, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.putVendorContextHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetVendorContext handles GET /api/v1/cases/:id/vendor-context.
func (s *Server) GetVendorContext(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewGetVendorContextQuery(org, caseID)
	if err != nil {
		return responseError(c, err)
	}

	resp, err := s.getVendorContextHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusOK, toVendorContextResponse(resp))
}

// DeleteVendorContext handles DELETE /api/v1/cases/:id/vendor-context.
func (s *Server) DeleteVendorContext(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewDeleteVendorContextCommand(caseID, org, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.deleteVendorContextHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// PutHOAContext handles PUT /api/v1/cases/:id/hoa-context.
func (s *Server) PutHOAContext(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	var req putHOAContextRequest
	if err = c.Bind(&req); err != nil {
		return responseError(c, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	cmd, err := commands.NewPutHOAContextCommand(
		caseID, org, req.HOARef, req.ManagementCompany, req.ApprovalRequired, req.Notes, actorRef(c))
	if err != nil {
		return responseError(c, err)
	}

	if err = s.putHOAContextHandler.Handle(c.Request().Context(), cmd); err != nil {
		return responseError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetHOAContext handles GET /api/v1/cases/:id/hoa-context.
func (s *Server) GetHOAContext(c echo.Context) error {
	caseID, err := pathID(c, "caseID")
	if err != nil {
		return responseError(c, err)
	}

	org, err := orgID(c)
	if err != nil {
		return responseError(c, err)
	}

	query, err := queries.NewGetHOAContextQuery(org, caseID)
	if err != nil {
		return responseError(c, err)
	}

	resp, err := s.getHOAContextHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return responseError(c, err)
	}

	return c.JSON(http.StatusOK, toHOAContextResponse(resp))
}

// pathID parses the :id path parameter, reporting it under the given name.
func pathID(c echo.Context, paramName string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return id, nil
}

// statusFilter parses the optional status query parameter.
func statusFilter(c echo.Context) (*concase.Status, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, nil
	}

	status, err := concase.StatusFromString(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// limitParam parses the optional limit query parameter. Zero means the
// query's default page size.
func limitParam(c echo.Context) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0, nil
	}

	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("limit", err)
	}
	return limit, nil
}
