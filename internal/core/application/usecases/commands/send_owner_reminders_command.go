package commands

import (
	"errors"
	"time"

	"concierge/internal/pkg/errs"
	"concierge/internal/pkg/guard"
)

var (
	ErrSendOwnerRemindersCommandIsNotConstructed = errors.New(
		"SendOwnerRemindersCommand must be created via NewSendOwnerRemindersCommand constructor",
	)
)

// maxStaleWindow caps the reminder window at thirty days; anything longer
// points at a configuration mistake.
const maxStaleWindow = 30 * 24 * time.Hour

// SendOwnerRemindersCommand represents a sweep over cases waiting on the
// owner. Cases untouched for longer than the stale window get a reminder
// activity row.
type SendOwnerRemindersCommand struct { //nolint:recvcheck //using for validation
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewSendOwnerRemindersCommand creates a command for the reminder sweep.
func NewSendOwnerRemindersCommand(staleAfter time.Duration) (SendOwnerRemindersCommand, error) {
	cmd := SendOwnerRemindersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setStaleAfter(staleAfter); err != nil {
		return SendOwnerRemindersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendOwnerRemindersCommand) Validate() error {
	return c.guard.Validate(ErrSendOwnerRemindersCommandIsNotConstructed)
}

// StaleAfter returns how long a case may sit in PENDING_OWNER before a
// reminder is due.
func (c SendOwnerRemindersCommand) StaleAfter() time.Duration {
	return c.staleAfter
}

func (c *SendOwnerRemindersCommand) setStaleAfter(staleAfter time.Duration) error {
	if staleAfter <= 0 || staleAfter > maxStaleWindow {
		return errs.NewValueIsOutOfRangeError("staleAfter", staleAfter, time.Nanosecond, maxStaleWindow)
	}
	c.staleAfter = staleAfter
	return nil
}
