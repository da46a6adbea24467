package ports

import (
	"context"

	"bistro/internal/core/domain/model/inventory"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/station"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// operations never share transaction state.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the kitchen's
// state. The station registry, the backup ingredient pool, and the order
// queue form a single consistency boundary: a fulfillment pass moves stock
// between all three, so they commit and roll back together.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new kitchen transaction.
	Begin(ctx context.Context) error

	// Commit publishes the transaction's changes.
	// Fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback discards the transaction's changes.
	// Fails when no transaction is active.
	Rollback(ctx context.Context) error

	// Registry returns the station registry bound to the current transaction.
	// Mutations become visible to others only after Commit.
	Registry() *station.Registry

	// Backup returns the backup ingredient pool bound to the current transaction.
	// Mutations become visible to others only after Commit.
	Backup() *inventory.Backup

	// Orders returns the order queue bound to the current transaction.
	// Mutations become visible to others only after Commit.
	Orders() *order.Queue
}
