// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"valueguard/internal/core/domain/model/kernel"
	"valueguard/internal/pkg/guard"
)

var ErrGetHolderQueryIsNotConstructed = errors.New(
	"GetHolderQuery must be created via NewGetHolderQuery constructor",
)

// GetHolderQuery retrieves a single holder by ID.
type GetHolderQuery struct {
	id    kernel.UUID
	guard guard.ConstructorGuard
}

// NewGetHolderQuery creates a query for the given holder ID.
func NewGetHolderQuery(id kernel.UUID) (GetHolderQuery, error) {
	if err := id.Validate(); err != nil {
		return GetHolderQuery{}, err
	}

	return GetHolderQuery{id: id, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHolderQuery) Validate() error {
	return q.guard.Validate(ErrGetHolderQueryIsNotConstructed)
}

// ID returns the requested holder ID.
func (q GetHolderQuery) ID() kernel.UUID {
	return q.id
}

// HolderResponse is the read model shared by the holder queries.
type HolderResponse struct {
	ID        kernel.UUID
	Value     kernel.PositiveValue
	CreatedAt time.Time
}
