package queries

import (
	"context"
	"errors"
	"time"

	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHolderQueryHandler reads one holder straight from the database.
type GetHolderQueryHandler struct {
	db *gorm.DB
}

// NewGetHolderQueryHandler creates a handler for single holder lookups.
func NewGetHolderQueryHandler(db *gorm.DB) GetHolderQueryHandler {
	return GetHolderQueryHandler{db: db}
}

// Handle returns the holder or *errs.ObjectNotFoundError.
func (h GetHolderQueryHandler) Handle(ctx context.Context, query GetHolderQuery) (HolderResponse, error) {
	if err := query.Validate(); err != nil {
		return HolderResponse{}, err
	}

	var row holderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			value,
			created_at
		FROM holders
		WHERE id = ?
	`, query.ID().Bytes()).Scan(&row).Error
	if err != nil {
		return HolderResponse{}, err
	}

	if row.ID == uuid.Nil {
		return HolderResponse{}, errs.NewObjectNotFoundError("holder", query.ID().String())
	}

	return row.toResponse()
}

// holderRow is the raw shape of a holders row.
type holderRow struct {
	ID        uuid.UUID
	Value     int
	CreatedAt time.Time
}

// toResponse brings a row back into the domain; stored values pass through
// kernel.NewPositiveValue like any other input.
func (r holderRow) toResponse() (HolderResponse, error) {
	id, idErr := kernel.UUIDFromBytes(r.ID[:])
	value, valueErr := kernel.NewPositiveValue(r.Value)
	if err := errors.Join(idErr, valueErr); err != nil {
		return HolderResponse{}, err
	}

	return HolderResponse{
		ID:        id,
		Value:     value,
		CreatedAt: r.CreatedAt.UTC(),
	}, nil
}
