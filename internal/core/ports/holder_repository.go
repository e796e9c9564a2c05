// Package ports defines the contracts between the domain/application layers and infrastructure.
package ports

import (
	"context"
	"time"

	"valueguard/internal/core/domain/model/holder"
	"valueguard/internal/core/domain/model/kernel"
)

// HolderRepository defines the persistence contract for holder entities.
type HolderRepository interface {
	// Add persists a new holder. The holder must be valid and not already stored.
	Add(ctx context.Context, h *holder.Holder) error

	// Get retrieves a holder by ID. Returns *errs.ObjectNotFoundError when absent.
	Get(ctx context.Context, id kernel.UUID) (*holder.Holder, error)

	// DeleteCreatedBefore removes every holder created strictly before cutoff
	// and returns how many rows were deleted.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
