package holder

import (
	"errors"
	"fmt"
	"time"

	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/pkg/errs"
)

// ErrHolderIsNotConstructed is returned when a Holder was not created by NewHolder or RestoreHolder.
var ErrHolderIsNotConstructed = errors.New("Holder must be created via NewHolder or RestoreHolder constructor")

// Holder owns exactly one PositiveValue. It is immutable after construction.
type Holder struct {
	id        kernel.UUID
	value     kernel.PositiveValue
	createdAt time.Time

	isConstructed bool
}

// NewHolder creates a Holder for an already validated value.
//
// The value is checked first. Only on success is the Holder allocated and given
// a fresh UUID, so a failed call leaves nothing behind.
//
// Example:
//
//	value, err := kernel.NewPositiveValue(42)
//	if err != nil {
//	    return err
//	}
//	h, err := holder.NewHolder(value)
func NewHolder(value kernel.PositiveValue) (*Holder, error) {
	if err := value.Validate(); err != nil {
		return nil, err
	}

	return &Holder{
		id:            kernel.NewUUID(),
		value:         value,
		createdAt:     time.Now().UTC().Truncate(time.Microsecond),
		isConstructed: true,
	}, nil
}

// RestoreHolder rebuilds a Holder from persisted state. The raw value goes
// through kernel.NewPositiveValue, so a corrupt row is rejected with the same
// errors a fresh construction would produce.
func RestoreHolder(id kernel.UUID, raw int, createdAt time.Time) (*Holder, error) {
	value, valueErr := kernel.NewPositiveValue(raw)

	var createdAtErr error
	if createdAt.IsZero() {
		createdAtErr = errs.NewValueIsRequiredError("createdAt")
	}

	if err := errors.Join(id.Validate(), valueErr, createdAtErr); err != nil {
		return nil, err
	}

	return &Holder{
		id:            id,
		value:         value,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Holder was built by one of the constructors.
func (h *Holder) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHolderIsNotConstructed
	}

	return nil
}

// IsEqual compares holders by ID.
func (h *Holder) IsEqual(other *Holder) bool {
	return other != nil && h.id.IsEqual(other.id)
}

// ID returns the holder's unique identifier.
func (h *Holder) ID() kernel.UUID {
	return h.id
}

// Value returns the held value.
func (h *Holder) Value() kernel.PositiveValue {
	return h.value
}

// CreatedAt returns the creation time in UTC, at the microsecond precision postgres stores.
func (h *Holder) CreatedAt() time.Time {
	return h.createdAt
}

func (h *Holder) String() string {
	return fmt.Sprintf("Holder(%s,%s)", h.id, h.value)
}
