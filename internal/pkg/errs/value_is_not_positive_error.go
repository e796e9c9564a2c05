package errs

import (
	"errors"
	"fmt"
)

// ErrValueIsNotPositive is the sentinel matched by every ValueIsNotPositiveError.
// Its text doubles as the human-readable reason carried by the error.
var ErrValueIsNotPositive = errors.New("value must be positive")

// ValueIsNotPositiveError reports a rejected input that had to be strictly
// greater than zero. Value holds the rejected input as given by the caller.
//
// A ValueIsNotPositiveError also matches ErrValueIsInvalid, so callers that only
// care about the broader "invalid value" class can keep using that sentinel.
type ValueIsNotPositiveError struct {
	ParamName string
	Value     any
	Cause     error
}

// NewValueIsNotPositiveError creates a ValueIsNotPositiveError for the rejected value.
func NewValueIsNotPositiveError(paramName string, value any) *ValueIsNotPositiveError {
	return &ValueIsNotPositiveError{
		ParamName: paramName,
		Value:     value,
	}
}

// NewValueIsNotPositiveErrorWithCause creates a ValueIsNotPositiveError explained by cause.
func NewValueIsNotPositiveErrorWithCause(paramName string, value any, cause error) *ValueIsNotPositiveError {
	return &ValueIsNotPositiveError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

// Reason returns the human-readable rule the value violated.
func (e *ValueIsNotPositiveError) Reason() string {
	return ErrValueIsNotPositive.Error()
}

func (e *ValueIsNotPositiveError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s", ErrValueIsNotPositive, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsNotPositiveError) Unwrap() error {
	return ErrValueIsNotPositive
}

// Is reports whether target is ErrValueIsInvalid. Matching against
// ErrValueIsNotPositive goes through Unwrap.
func (e *ValueIsNotPositiveError) Is(target error) bool {
	return target == ErrValueIsInvalid
}
