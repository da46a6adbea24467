package queries

import (
	"context"

	"bistro/internal/core/ports"
)

// GetBackupStockQueryHandler retrieves the backup pool's contents from
// committed kitchen state.
type GetBackupStockQueryHandler struct {
	reader ports.KitchenReader
}

// NewGetBackupStockQueryHandler creates a handler for backup pool queries.
// Requires a KitchenReader for access to committed state.
func NewGetBackupStockQueryHandler(reader ports.KitchenReader) GetBackupStockQueryHandler {
	return GetBackupStockQueryHandler{reader: reader}
}

// Handle executes the query to retrieve the backup pool.
// Returns one view per pooled ingredient; entries whose quantity reached
// zero have left the pool and do not appear.
func (h GetBackupStockQueryHandler) Handle(
	ctx context.Context,
	query GetBackupStockQuery,
) ([]IngredientView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.reader.ViewBackup(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]IngredientView, 0, len(items))
	for _, item := range items {
		views = append(views, newIngredientView(item))
	}

	return views, nil
}
