package commands

import (
	"errors"
	"time"

	"valueguard/internal/pkg/errs"
	"valueguard/internal/pkg/guard"
)

var ErrPurgeHoldersCommandIsNotConstructed = errors.New(
	"PurgeHoldersCommand must be created via NewPurgeHoldersCommand constructor",
)

// PurgeHoldersCommand requests removal of holders older than a retention period.
type PurgeHoldersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration
	now       time.Time

	guard guard.ConstructorGuard
}

// NewPurgeHoldersCommand creates a purge command. retention must be positive
// and now must be set.
func NewPurgeHoldersCommand(retention time.Duration, now time.Time) (PurgeHoldersCommand, error) {
	cmd := PurgeHoldersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRetention(retention),
		cmd.setNow(now),
	); err != nil {
		return PurgeHoldersCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeHoldersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeHoldersCommandIsNotConstructed)
}

// Cutoff returns the instant before which holders are purged.
func (c PurgeHoldersCommand) Cutoff() time.Time {
	return c.now.Add(-c.retention)
}

func (c *PurgeHoldersCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsNotPositiveError("retention", retention)
	}

	c.retention = retention
	return nil
}

func (c *PurgeHoldersCommand) setNow(now time.Time) error {
	if now.IsZero() {
		return errs.NewValueIsRequiredError("now")
	}

	c.now = now
	return nil
}
