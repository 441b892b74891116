package concase

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

var (
	// ErrCaseIsNotConstructed is returned when a Case instance was not created
	// through NewCase or RestoreCase. This ensures all cases are validated.
	ErrCaseIsNotConstructed = errors.New("Case must be created via NewCase or RestoreCase constructor")

	// ErrTitleIsRequired is returned when attempting to create a case without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")

	// ErrPropertyRefIsRequired is returned when attempting to create a case
	// without a property reference.
	ErrPropertyRefIsRequired = errs.NewValueIsRequiredError("propertyRef")
)

// Case represents a concierge service request tracked through its lifecycle
// from intake to resolution. It is the aggregate root owning the case status
// state machine.
//
// Case maintains these invariants:
//   - Must have valid identifiers (case, organization, portfolio)
//   - Must have a non-empty title and property reference
//   - Status transitions follow the adjacency table in Status
//   - Can only be created through NewCase or RestoreCase
//
// Fields are private so invariants can only be changed through validated
// methods.
type Case struct {
	id          kernel.UUID
	orgID       kernel.UUID
	portfolioID kernel.UUID

	// propertyRef identifies the property this case concerns in the
	// organization's own nomenclature.
	propertyRef string

	title       string
	summary     string
	priority    Priority
	status      Status
	assigneeRef string
	tags        []string

	isConstructed bool
}

// NewCase creates a new Case in Intake status. This is the only way to create
// a case for a brand-new request; reconstruction from persistence goes through
// RestoreCase.
func NewCase(
	id kernel.UUID,
	orgID kernel.UUID,
	portfolioID kernel.UUID,
	propertyRef string,
	title string,
	summary string,
	priority Priority,
) (*Case, error) {
	c := &Case{
		status:        Intake,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrgID(orgID),
		c.setPortfolioID(portfolioID),
		c.setPropertyRef(propertyRef),
		c.setTitle(title),
		c.setPriority(priority),
	); err != nil {
		return nil, err
	}

	c.summary = summary
	return c, nil
}

// RestoreCase reconstructs a Case from persistence without running the
// creation-time defaults. All stored fields, including the persisted status,
// are validated before the aggregate is returned.
func RestoreCase(
	id kernel.UUID,
	orgID kernel.UUID,
	portfolioID kernel.UUID,
	propertyRef string,
	title string,
	summary string,
	priority Priority,
	status Status,
	assigneeRef string,
	tags []string,
) (*Case, error) {
	c := &Case{
		summary:       summary,
		assigneeRef:   assigneeRef,
		tags:          tags,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setOrgID(orgID),
		c.setPortfolioID(portfolioID),
		c.setPropertyRef(propertyRef),
		c.setTitle(title),
		c.setPriority(priority),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Case instance was properly constructed.
func (c *Case) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCaseIsNotConstructed
	}
	return nil
}

// IsEqual compares two cases by their unique identifiers.
func (c *Case) IsEqual(other *Case) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the case's unique identifier.
func (c *Case) ID() kernel.UUID {
	return c.id
}

// OrgID returns the owning organization's identifier.
func (c *Case) OrgID() kernel.UUID {
	return c.orgID
}

// PortfolioID returns the identifier of the portfolio the case belongs to.
func (c *Case) PortfolioID() kernel.UUID {
	return c.portfolioID
}

// PropertyRef returns the organization's reference for the property.
func (c *Case) PropertyRef() string {
	return c.propertyRef
}

// Title returns the case title.
func (c *Case) Title() string {
	return c.title
}

// Summary returns the free-form case summary.
func (c *Case) Summary() string {
	return c.summary
}

// Priority returns the case priority.
func (c *Case) Priority() Priority {
	return c.priority
}

// Status returns the current lifecycle status.
func (c *Case) Status() Status {
	return c.status
}

// AssigneeRef returns the reference of the assigned concierge, or the empty
// string when unassigned.
func (c *Case) AssigneeRef() string {
	return c.assigneeRef
}

// Tags returns the case tags.
func (c *Case) Tags() []string {
	return c.tags
}

// UpdateDetails replaces the mutable descriptive fields of the case. Status is
// deliberately excluded; lifecycle changes go through ChangeStatus. Updates
// are rejected on cases in a terminal status.
func (c *Case) UpdateDetails(title, summary string, priority Priority, assigneeRef string, tags []string) error {
	if c.status.IsTerminal() {
		return errs.NewConflictErrorWithCause(
			"status",
			errors.New(c.status.String()+" cases cannot be updated"),
		)
	}

	if err := errors.Join(
		c.setTitle(title),
		c.setPriority(priority),
	); err != nil {
		return err
	}

	c.summary = summary
	c.assigneeRef = assigneeRef
	c.tags = tags
	return nil
}

// ChangeStatus transitions the case to the target status, enforcing the
// adjacency table. Disallowed transitions leave the aggregate unchanged and
// return a validation error.
func (c *Case) ChangeStatus(target Status) error {
	newStatus, err := c.status.TransitionTo(target)
	if err != nil {
		return err
	}

	c.status = newStatus
	return nil
}

func (c *Case) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Case) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	c.orgID = orgID
	return nil
}

func (c *Case) setPortfolioID(portfolioID kernel.UUID) error {
	if err := portfolioID.Validate(); err != nil {
		return err
	}
	c.portfolioID = portfolioID
	return nil
}

func (c *Case) setPropertyRef(propertyRef string) error {
	if propertyRef == "" {
		return ErrPropertyRefIsRequired
	}
	c.propertyRef = propertyRef
	return nil
}

func (c *Case) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	c.title = title
	return nil
}

func (c *Case) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	c.priority = priority
	return nil
}

func (c *Case) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
