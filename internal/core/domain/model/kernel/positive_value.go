package kernel

import (
	"errors"
	"strconv"

	"valueguard/internal/pkg/errs"
	"valueguard/internal/pkg/guard"
)

// ErrPositiveValueIsNotConstructed is returned when a PositiveValue was not created by NewPositiveValue.
var ErrPositiveValueIsNotConstructed = errs.NewValueIsRequiredError(
	"positive value must be created via NewPositiveValue constructor")

// PositiveValue is an immutable integer that is always strictly greater than zero.
//
// NewPositiveValue is the only way to obtain one. It checks the raw input before
// any PositiveValue exists, so a rejected input never produces an instance that
// something else could hold on to, inspect, or attach cleanup to. The zero value
// is not an instance: it fails Validate.
//
// Example:
//
//	v, err := kernel.NewPositiveValue(42)
//	if err != nil {
//	    // err is *errs.ValueIsNotPositiveError
//	}
//	fmt.Println(v) // Output: 42
type PositiveValue struct {
	value int
	guard guard.ConstructorGuard
}

// NewPositiveValue validates raw and, only when raw > 0, returns a PositiveValue holding it.
//
// Returns:
//   - PositiveValue: the constructed value, with Value() == raw
//   - error: *errs.ValueIsNotPositiveError carrying raw when raw <= 0
func NewPositiveValue(raw int) (PositiveValue, error) {
	if err := checkPositive(raw); err != nil {
		return PositiveValue{}, err
	}

	return PositiveValue{
		value: raw,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// checkPositive is the whole rule. It touches nothing but its argument.
func checkPositive(raw int) error {
	if raw <= 0 {
		return errs.NewValueIsNotPositiveError("value", raw)
	}
	return nil
}

// Validate reports whether v came from NewPositiveValue.
func (v PositiveValue) Validate() error {
	return v.guard.Validate(ErrPositiveValueIsNotConstructed)
}

// Value returns the wrapped integer. It is > 0 for every constructed PositiveValue.
func (v PositiveValue) Value() int {
	return v.value
}

// String returns the decimal text of the value and implements fmt.Stringer.
func (v PositiveValue) String() string {
	return strconv.Itoa(v.value)
}

// IsEqual compares two values. Both must be constructed.
func (v PositiveValue) IsEqual(other PositiveValue) (bool, error) {
	if err := errors.Join(v.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return v.value == other.value, nil
}
