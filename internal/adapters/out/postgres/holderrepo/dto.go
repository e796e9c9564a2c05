// Package holderrepo provides the gorm-backed repository for holder entities
// and the mapping between holders and their database rows.
package holderrepo

import (
	"time"

	"valueguard/internal/core/domain/model/holder"
	"valueguard/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HolderDTO is the database row of a holder.
type HolderDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Value     int       `gorm:"type:bigint;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;index"`
}

// TableName overrides GORM's default naming convention to use "holders".
func (HolderDTO) TableName() string {
	return "holders"
}

func fromDomain(h *holder.Holder) HolderDTO {
	return HolderDTO{
		ID:        h.ID().Bytes(),
		Value:     h.Value().Value(),
		CreatedAt: h.CreatedAt(),
	}
}

func toDomain(dto HolderDTO) (*holder.Holder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return holder.RestoreHolder(id, dto.Value, dto.CreatedAt)
}
