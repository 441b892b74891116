package action

import (
	"errors"
	"time"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

var (
	// ErrActionIsNotConstructed is returned when an Action instance was not
	// created through NewAction or RestoreAction.
	ErrActionIsNotConstructed = errors.New("Action must be created via NewAction or RestoreAction constructor")

	// ErrTitleIsRequired is returned when attempting to create an action
	// without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
)

// Action represents a discrete task performed within a case's lifecycle. It is
// an aggregate root owning the action status state machine; the owning case is
// referenced by ID only.
type Action struct {
	id          kernel.UUID
	orgID       kernel.UUID
	caseID      kernel.UUID
	title       string
	detail      string
	status      Status
	assigneeRef string
	dueAt       *time.Time

	isConstructed bool
}

// NewAction creates a new Action in Planned status for the given case.
func NewAction(
	id kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	title string,
	detail string,
	assigneeRef string,
	dueAt *time.Time,
) (*Action, error) {
	a := &Action{
		detail:        detail,
		assigneeRef:   assigneeRef,
		dueAt:         dueAt,
		status:        Planned,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrgID(orgID),
		a.setCaseID(caseID),
		a.setTitle(title),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAction reconstructs an Action from persistence, validating the
// stored status.
func RestoreAction(
	id kernel.UUID,
	orgID kernel.UUID,
	caseID kernel.UUID,
	title string,
	detail string,
	status Status,
	assigneeRef string,
	dueAt *time.Time,
) (*Action, error) {
	a := &Action{
		detail:        detail,
		assigneeRef:   assigneeRef,
		dueAt:         dueAt,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setOrgID(orgID),
		a.setCaseID(caseID),
		a.setTitle(title),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Action instance was properly constructed.
func (a *Action) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrActionIsNotConstructed
	}
	return nil
}

// IsEqual compares two actions by their unique identifiers.
func (a *Action) IsEqual(other *Action) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the action's unique identifier.
func (a *Action) ID() kernel.UUID {
	return a.id
}

// OrgID returns the owning organization's identifier.
func (a *Action) OrgID() kernel.UUID {
	return a.orgID
}

// CaseID returns the identifier of the case the action belongs to.
func (a *Action) CaseID() kernel.UUID {
	return a.caseID
}

// Title returns the action title.
func (a *Action) Title() string {
	return a.title
}

// Detail returns the free-form action detail.
func (a *Action) Detail() string {
	return a.detail
}

// Status returns the current lifecycle status.
func (a *Action) Status() Status {
	return a.status
}

// AssigneeRef returns the reference of the assignee, or the empty string when
// unassigned.
func (a *Action) AssigneeRef() string {
	return a.assigneeRef
}

// DueAt returns the optional due timestamp.
func (a *Action) DueAt() *time.Time {
	return a.dueAt
}

// ChangeStatus transitions the action to the target status, enforcing the
// adjacency table. Disallowed transitions leave the aggregate unchanged.
func (a *Action) ChangeStatus(target Status) error {
	newStatus, err := a.status.TransitionTo(target)
	if err != nil {
		return err
	}

	a.status = newStatus
	return nil
}

func (a *Action) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Action) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	a.orgID = orgID
	return nil
}

func (a *Action) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	a.caseID = caseID
	return nil
}

func (a *Action) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	a.title = title
	return nil
}

func (a *Action) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
