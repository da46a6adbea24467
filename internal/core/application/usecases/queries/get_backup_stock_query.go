package queries

import (
	"errors"

	"bistro/internal/pkg/guard"
)

var (
	ErrGetBackupStockQueryIsNotConstructed = errors.New(
		"GetBackupStockQuery must be created via NewGetBackupStockQuery constructor",
	)
)

// GetBackupStockQuery retrieves the contents of the backup ingredient
// pool, the reserve stations draw on when their own stock runs short.
type GetBackupStockQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBackupStockQuery creates a query to retrieve the backup pool.
// This is a parameterless query that fetches every pooled ingredient.
func NewGetBackupStockQuery() GetBackupStockQuery {
	return GetBackupStockQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBackupStockQueryIsNotConstructed if validation fails.
func (q GetBackupStockQuery) Validate() error {
	return q.guard.Validate(ErrGetBackupStockQueryIsNotConstructed)
}
