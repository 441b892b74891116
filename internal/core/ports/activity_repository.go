package ports

import (
	"context"

	"concierge/internal/core/domain/model/activity"
)

// ActivityRepository records audit activity entries. Implementations persist
// entries in the same transaction as the write they describe, so a committed
// write always has its activity row and a rolled-back write leaves none.
type ActivityRepository interface {
	// Record appends an activity entry.
	Record(ctx context.Context, entry *activity.Entry) error
}
