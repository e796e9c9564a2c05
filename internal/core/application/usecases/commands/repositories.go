// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"valueguard/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// HolderRepoFactory provides access to the holder repository within a transaction.
	HolderRepoFactory interface {
		HolderRepository() ports.HolderRepository
	}

	// HolderUoW manages transactions for holder operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.HolderRepository().Add(ctx, h)
	//   err = uow.Commit(ctx)
	HolderUoW interface {
		TxManager
		HolderRepoFactory
	}

	// HolderUoWFactory creates new holder unit of work instances.
	HolderUoWFactory interface {
		Create() HolderUoW
	}
)
