package holderrepo

import (
	"context"
	"errors"
	"time"

	"valueguard/internal/core/domain/model/holder"
	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormHolderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormHolderRepository(db *gorm.DB, tracker aggregateTracker) *GormHolderRepository {
	return &GormHolderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormHolderRepository) Add(ctx context.Context, h *holder.Holder) error {
	if err := h.Validate(); err != nil {
		return err
	}

	dto := fromDomain(h)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(h.ID(), h)
	return nil
}

func (r *GormHolderRepository) Get(ctx context.Context, id kernel.UUID) (*holder.Holder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto HolderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("holder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormHolderRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if cutoff.IsZero() {
		return 0, errs.NewValueIsRequiredError("cutoff")
	}

	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&HolderDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
