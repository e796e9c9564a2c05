package commands

import (
	"context"

	"valueguard/internal/core/domain/model/holder"
	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/core/ports"
)

// CreateHolderCommandHandler creates a holder, attaches its cleanup and persists it.
//
// The command has already validated the value, so the holder is only created
// for a valid value, and cleanup is only registered for an existing holder.
type CreateHolderCommandHandler struct {
	uowFactory HolderUoWFactory
	cleanup    ports.CleanupRegistry
}

// NewCreateHolderCommandHandler creates a handler for holder creation.
func NewCreateHolderCommandHandler(
	uowFactory HolderUoWFactory,
	cleanup ports.CleanupRegistry,
) CreateHolderCommandHandler {
	return CreateHolderCommandHandler{
		uowFactory: uowFactory,
		cleanup:    cleanup,
	}
}

// Handle processes the command and returns the new holder's ID.
func (h *CreateHolderCommandHandler) Handle(ctx context.Context, cmd CreateHolderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	created, err := holder.NewHolder(cmd.Value())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = h.cleanup.Register(created); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.HolderRepository().Add(ctx, created); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return created.ID(), nil
}
