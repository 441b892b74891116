package postgres

import (
	"context"
	"time"

	"concierge/internal/core/application/usecases/commands"
	"concierge/internal/core/domain/model/concase"
	"concierge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStaleCaseFinder scans for cases parked on the owner past a deadline.
// It reads across organizations on the pool connection, outside any
// tenant-scoped transaction; only the reminder sweep uses it.
type GormStaleCaseFinder struct {
	db *gorm.DB
}

// NewGormStaleCaseFinder creates a finder backed by the connection pool.
func NewGormStaleCaseFinder(db *gorm.DB) *GormStaleCaseFinder {
	return &GormStaleCaseFinder{db: db}
}

// FindStaleOwnerCases lists live PENDING_OWNER cases untouched since the
// given instant.
func (f *GormStaleCaseFinder) FindStaleOwnerCases(ctx context.Context, updatedBefore time.Time) ([]commands.StaleOwnerCase, error) {
	var rows []struct {
		ID    uuid.UUID
		OrgID uuid.UUID
	}

	err := f.db.WithContext(ctx).
		Table("cases").
		Select("id", "org_id").
		Where("status = ? AND updated_at < ? AND deleted_at IS NULL",
			concase.PendingOwner.String(), updatedBefore).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	stale := make([]commands.StaleOwnerCase, 0, len(rows))
	for _, row := range rows {
		caseID, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		orgID, idErr := kernel.UUIDFromBytes(row.OrgID[:])
		if idErr != nil {
			return nil, idErr
		}
		stale = append(stale, commands.StaleOwnerCase{CaseID: caseID, OrgID: orgID})
	}

	return stale, nil
}
