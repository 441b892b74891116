package http

import (
	"time"

	"concierge/internal/core/application/usecases/queries"
)

// Request bodies.

type createPortfolioRequest struct {
	Name          string `json:"name"`
	PropertyCount int    `json:"property_count"`
}

type createCaseRequest struct {
	PortfolioID string `json:"portfolio_id"`
	PropertyRef string `json:"property_ref"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Priority    string `json:"priority"`
}

type updateCaseRequest struct {
	Title       string   `json:"title"`
	Summary     string   `json:"summary"`
	Priority    string   `json:"priority"`
	AssigneeRef string   `json:"assignee_ref"`
	Tags        []string `json:"tags"`
}

type changeCaseStatusRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

type createActionRequest struct {
	Title       string     `json:"title"`
	Detail      string     `json:"detail"`
	AssigneeRef string     `json:"assignee_ref"`
	DueAt       *time.Time `json:"due_at"`
}

type changeActionStatusRequest struct {
	Status string `json:"status"`
}

type recordDecisionRequest struct {
	Outcome   string `json:"outcome"`
	Rationale string `json:"rationale"`
}

type putVendorContextRequest struct {
	VendorRef    string   `json:"vendor_ref"`
	Trades       []string `json:"trades"`
	ContactEmail string   `json:"contact_email"`
	Notes        string   `json:"notes"`
}

type putHOAContextRequest struct {
	HOARef            string `json:"hoa_ref"`
	ManagementCompany string `json:"management_company"`
	ApprovalRequired  bool   `json:"approval_required"`
	Notes             string `json:"notes"`
}

// Response bodies.

type idResponse struct {
	ID string `json:"id"`
}

type caseResponse struct {
	ID          string    `json:"id"`
	PortfolioID string    `json:"portfolio_id"`
	PropertyRef string    `json:"property_ref"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	AssigneeRef string    `json:"assignee_ref"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type casePageResponse struct {
	Cases      []caseResponse `json:"cases"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

type staffCaseResponse struct {
	caseResponse
	OrgID string `json:"org_id"`
}

type staffCasePageResponse struct {
	Cases      []staffCaseResponse `json:"cases"`
	NextCursor string              `json:"next_cursor,omitempty"`
}

type portfolioResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	PropertyCount int        `json:"property_count"`
	ArchivedAt    *time.Time `json:"archived_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type actionResponse struct {
	ID          string     `json:"id"`
	CaseID      string     `json:"case_id"`
	Title       string     `json:"title"`
	Detail      string     `json:"detail"`
	Status      string     `json:"status"`
	AssigneeRef string     `json:"assignee_ref"`
	DueAt       *time.Time `json:"due_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type decisionResponse struct {
	ID           string    `json:"id"`
	CaseID       string    `json:"case_id"`
	Outcome      string    `json:"outcome"`
	Rationale    string    `json:"rationale"`
	DecidedByRef string    `json:"decided_by_ref"`
	DecidedAt    time.Time `json:"decided_at"`
}

type vendorContextResponse struct {
	CaseID       string   `json:"case_id"`
	VendorRef    string   `json:"vendor_ref"`
	Trades       []string `json:"trades"`
	ContactEmail string   `json:"contact_email"`
	Notes        string   `json:"notes"`
}

type hoaContextResponse struct {
	CaseID            string `json:"case_id"`
	HOARef            string `json:"hoa_ref"`
	ManagementCompany string `json:"management_company"`
	ApprovalRequired  bool   `json:"approval_required"`
	Notes             string `json:"notes"`
}

type activityResponse struct {
	ID         string         `json:"id"`
	EntityKind string         `json:"entity_kind"`
	EntityID   string         `json:"entity_id"`
	Activity   string         `json:"activity"`
	ActorRef   string         `json:"actor_ref"`
	Payload    map[string]any `json:"payload"`
	RecordedAt time.Time      `json:"recorded_at"`
}

func toCaseResponse(m queries.CaseResponse) caseResponse {
	return caseResponse{
		ID:          m.ID.String(),
		PortfolioID: m.PortfolioID.String(),
		PropertyRef: m.PropertyRef,
		Title:       m.Title,
		Summary:     m.Summary,
		Priority:    m.Priority,
		Status:      m.Status,
		AssigneeRef: m.AssigneeRef,
		Tags:        m.Tags,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toCasePageResponse(page queries.CasePage) casePageResponse {
	cases := make([]caseResponse, len(page.Cases))
	for i, m := range page.Cases {
		cases[i] = toCaseResponse(m)
	}
	return casePageResponse{Cases: cases, NextCursor: page.NextCursor}
}

func toStaffCasePageResponse(page queries.CasePage) staffCasePageResponse {
	cases := make([]staffCaseResponse, len(page.Cases))
	for i, m := range page.Cases {
		cases[i] = staffCaseResponse{
			caseResponse: toCaseResponse(m),
			OrgID:        m.OrgID.String(),
		}
	}
	return staffCasePageResponse{Cases: cases, NextCursor: page.NextCursor}
}

func toPortfolioResponse(m queries.PortfolioResponse) portfolioResponse {
	return portfolioResponse{
		ID:            m.ID.String(),
		Name:          m.Name,
		PropertyCount: m.PropertyCount,
		ArchivedAt:    m.ArchivedAt,
		CreatedAt:     m.CreatedAt,
	}
}

func toActionResponse(m queries.ActionResponse) actionResponse {
	return actionResponse{
		ID:          m.ID.String(),
		CaseID:      m.CaseID.String(),
		Title:       m.Title,
		Detail:      m.Detail,
		Status:      m.Status,
		AssigneeRef: m.AssigneeRef,
		DueAt:       m.DueAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toDecisionResponse(m queries.DecisionResponse) decisionResponse {
	return decisionResponse{
		ID:           m.ID.String(),
		CaseID:       m.CaseID.String(),
		Outcome:      m.Outcome,
		Rationale:    m.Rationale,
		DecidedByRef: m.DecidedByRef,
		DecidedAt:    m.DecidedAt,
	}
}

func toVendorContextResponse(m queries.VendorContextResponse) vendorContextResponse {
	return vendorContextResponse{
		CaseID:       m.CaseID.String(),
		VendorRef:    m.VendorRef,
		Trades:       m.Trades,
		ContactEmail: m.ContactEmail,
		Notes:        m.Notes,
	}
}

func toHOAContextResponse(m queries.HOAContextResponse) hoaContextResponse {
	return hoaContextResponse{
		CaseID:            m.CaseID.String(),
		HOARef:            m.HOARef,
		ManagementCompany: m.ManagementCompany,
		ApprovalRequired:  m.ApprovalRequired,
		Notes:             m.Notes,
	}
}

func toActivityResponse(m queries.ActivityResponse) activityResponse {
	return activityResponse{
		ID:         m.ID.String(),
		EntityKind: m.EntityKind,
		EntityID:   m.EntityID.String(),
		Activity:   m.Activity,
		ActorRef:   m.ActorRef,
		Payload:    m.Payload,
		RecordedAt: m.RecordedAt,
	}
}
