package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllHoldersQueryHandler lists holders straight from the database.
type GetAllHoldersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllHoldersQueryHandler creates a handler for holder listings.
func NewGetAllHoldersQueryHandler(db *gorm.DB) GetAllHoldersQueryHandler {
	return GetAllHoldersQueryHandler{db: db}
}

// Handle returns holders ordered by creation time, then ID.
func (h GetAllHoldersQueryHandler) Handle(ctx context.Context, query GetAllHoldersQuery) ([]HolderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			value,
			created_at
		FROM holders
		ORDER BY created_at, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holders := make([]HolderResponse, 0)
	for rows.Next() {
		var row holderRow
		if err = rows.Scan(&row.ID, &row.Value, &row.CreatedAt); err != nil {
			return nil, err
		}

		response, convErr := row.toResponse()
		if convErr != nil {
			return nil, convErr
		}
		holders = append(holders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holders, nil
}
