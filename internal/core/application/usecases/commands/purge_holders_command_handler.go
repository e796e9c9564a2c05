package commands

import (
	"context"
)

// PurgeHoldersCommandHandler deletes expired holders in a single transaction.
type PurgeHoldersCommandHandler struct {
	uowFactory HolderUoWFactory
}

// NewPurgeHoldersCommandHandler creates a handler for holder purging.
func NewPurgeHoldersCommandHandler(uowFactory HolderUoWFactory) PurgeHoldersCommandHandler {
	return PurgeHoldersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes holders created before cmd.Cutoff() and returns how many were removed.
func (h *PurgeHoldersCommandHandler) Handle(ctx context.Context, cmd PurgeHoldersCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.HolderRepository().DeleteCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
