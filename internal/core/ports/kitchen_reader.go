// Package ports defines the contracts between the application core and
// infrastructure for the bistro kitchen. These interfaces establish the
// write-side transaction boundary and the read-side views, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/station"
)

// KitchenReader provides read-only views of the kitchen's committed state.
// Every method returns deep copies: callers may inspect and discard the
// results freely without affecting the kitchen.
type KitchenReader interface {
	// ViewStations returns copies of every registered station in fallback
	// order.
	ViewStations(ctx context.Context) ([]*station.Station, error)

	// ViewStation returns a copy of the named station.
	// Returns errs.ObjectNotFoundError if no such station is registered.
	ViewStation(ctx context.Context, name string) (*station.Station, error)

	// ViewBackup returns the backup pool's stock lines in first-insertion
	// order.
	ViewBackup(ctx context.Context) ([]ingredient.Ingredient, error)

	// ViewOrders returns copies of the queued tickets in queue order.
	ViewOrders(ctx context.Context) ([]*order.Ticket, error)
}
