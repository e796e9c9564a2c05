package commands

import (
	"errors"

	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/pkg/guard"
)

var ErrCreateHolderCommandIsNotConstructed = errors.New(
	"CreateHolderCommand must be created via NewCreateHolderCommand constructor",
)

// CreateHolderCommand requests a new holder for a raw integer.
//
// Example:
//
//	cmd, err := NewCreateHolderCommand(42)
//	if err != nil {
//	    return fmt.Errorf("invalid holder data: %w", err)
//	}
//
//	id, err := handler.Handle(ctx, cmd)
type CreateHolderCommand struct { //nolint:recvcheck //using for validation
	value kernel.PositiveValue

	guard guard.ConstructorGuard
}

// NewCreateHolderCommand validates raw through kernel.NewPositiveValue.
// Returns *errs.ValueIsNotPositiveError when raw <= 0.
func NewCreateHolderCommand(raw int) (CreateHolderCommand, error) {
	cmd := CreateHolderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setValue(raw); err != nil {
		return CreateHolderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateHolderCommand) Validate() error {
	return c.guard.Validate(ErrCreateHolderCommandIsNotConstructed)
}

// Value returns the validated value to hold.
func (c CreateHolderCommand) Value() kernel.PositiveValue {
	return c.value
}

func (c *CreateHolderCommand) setValue(raw int) error {
	value, err := kernel.NewPositiveValue(raw)
	if err != nil {
		return err
	}

	c.value = value
	return nil
}
