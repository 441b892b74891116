package ports

import (
	"context"

	"concierge/internal/core/domain/model/extcontext"
	"concierge/internal/core/domain/model/kernel"
)

// ExtContextRepository defines the persistence contract for vendor and HOA
// contexts. Each case holds at most one live context per kind; Put replaces
// any existing one, and Delete soft-deletes.
type ExtContextRepository interface {
	// PutVendorContext creates or replaces the vendor context for a case.
	PutVendorContext(ctx context.Context, aggregate *extcontext.VendorContext) error

	// GetVendorContext retrieves the live vendor context for a case.
	GetVendorContext(ctx context.Context, orgID, caseID kernel.UUID) (*extcontext.VendorContext, error)

	// DeleteVendorContext soft-deletes the vendor context for a case.
	DeleteVendorContext(ctx context.Context, orgID, caseID kernel.UUID) error

	// PutHOAContext creates or replaces the HOA context for a case.
	PutHOAContext(ctx context.Context, aggregate *extcontext.HOAContext) error

	// GetHOAContext retrieves the live HOA context for a case.
	GetHOAContext(ctx context.Context, orgID, caseID kernel.UUID) (*extcontext.HOAContext, error)
}
