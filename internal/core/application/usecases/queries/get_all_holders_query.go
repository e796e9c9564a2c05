package queries

import (
	"errors"

	"valueguard/internal/pkg/guard"
)

var ErrGetAllHoldersQueryIsNotConstructed = errors.New(
	"GetAllHoldersQuery must be created via NewGetAllHoldersQuery constructor",
)

// GetAllHoldersQuery retrieves every stored holder, oldest first.
type GetAllHoldersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllHoldersQuery creates a parameterless listing query.
func NewGetAllHoldersQuery() GetAllHoldersQuery {
	return GetAllHoldersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllHoldersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllHoldersQueryIsNotConstructed)
}
