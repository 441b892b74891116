// Package portfolio provides the Portfolio aggregate: an organization-scoped
// grouping of properties that cases are filed against.
package portfolio

import (
	"errors"

	"concierge/internal/core/domain/model/kernel"
	"concierge/internal/pkg/errs"
)

var (
	// ErrPortfolioIsNotConstructed is returned when a Portfolio instance was
	// not created through NewPortfolio or RestorePortfolio.
	ErrPortfolioIsNotConstructed = errors.New("Portfolio must be created via NewPortfolio or RestorePortfolio constructor")

	// ErrNameIsRequired is returned when attempting to create a portfolio
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrPropertyCountIsInvalid is returned for negative property counts.
	ErrPropertyCountIsInvalid = errs.NewValueIsInvalidError("propertyCount")
)

// Portfolio groups the properties an organization manages under one concierge
// engagement. Archiving is a soft operation; archived portfolios stop
// accepting new cases but keep their history.
type Portfolio struct {
	id            kernel.UUID
	orgID         kernel.UUID
	name          string
	propertyCount int
	archived      bool

	isConstructed bool
}

// NewPortfolio creates an active Portfolio.
func NewPortfolio(id, orgID kernel.UUID, name string, propertyCount int) (*Portfolio, error) {
	p := &Portfolio{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setOrgID(orgID),
		p.setName(name),
		p.setPropertyCount(propertyCount),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePortfolio reconstructs a Portfolio from persistence.
func RestorePortfolio(id, orgID kernel.UUID, name string, propertyCount int, archived bool) (*Portfolio, error) {
	p, err := NewPortfolio(id, orgID, name, propertyCount)
	if err != nil {
		return nil, err
	}

	p.archived = archived
	return p, nil
}

// Validate ensures the Portfolio instance was properly constructed.
func (p *Portfolio) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPortfolioIsNotConstructed
	}
	return nil
}

// ID returns the portfolio's unique identifier.
func (p *Portfolio) ID() kernel.UUID {
	return p.id
}

// OrgID returns the owning organization's identifier.
func (p *Portfolio) OrgID() kernel.UUID {
	return p.orgID
}

// Name returns the portfolio name.
func (p *Portfolio) Name() string {
	return p.name
}

// PropertyCount returns the number of properties in the portfolio.
func (p *Portfolio) PropertyCount() int {
	return p.propertyCount
}

// IsArchived reports whether the portfolio has been archived.
func (p *Portfolio) IsArchived() bool {
	return p.archived
}

// Archive marks the portfolio archived. Archiving twice is a conflict.
func (p *Portfolio) Archive() error {
	if p.archived {
		return errs.NewConflictError("portfolio is already archived")
	}
	p.archived = true
	return nil
}

func (p *Portfolio) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Portfolio) setOrgID(orgID kernel.UUID) error {
	if err := orgID.Validate(); err != nil {
		return err
	}
	p.orgID = orgID
	return nil
}

func (p *Portfolio) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Portfolio) setPropertyCount(count int) error {
	if count < 0 {
		return ErrPropertyCountIsInvalid
	}
	p.propertyCount = count
	return nil
}
