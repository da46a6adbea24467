// Package memstore provides an in-memory implementation of the kitchen's
// Unit of Work and read-side ports. The kitchen is a live, ephemeral system:
// state lives for the process lifetime and every business operation works on
// the one shared Store.
//
// Key Features:
//   - Snapshot-based transactions: Begin deep copies the kitchen, Rollback
//     restores the copy, Commit discards it
//   - One writer at a time: the transaction holds the store's write lock
//     from Begin until Commit or Rollback
//   - Concurrent readers over committed state via deep-copied views
//
// Usage Patterns:
//
// Basic Transaction Management:
//
//	store := memstore.NewStore()
//	factory := memstore.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	if err := uow.Registry().Add(grill); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// The deferred Rollback after a successful Commit is a no-op that reports
// ErrNoActiveTransaction; handlers discard that error.
//
// Concurrency Considerations:
//   - Each UnitOfWork instance manages exactly one transaction at a time
//   - Transactions serialize on the store's write lock; keep them short
//   - Readers never block each other, only an in-flight transaction
package memstore

import (
	"context"
	"errors"

	"bistro/internal/core/domain/model/inventory"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/station"
	"bistro/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when the unit
// of work has no transaction in flight.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to one kitchen store.
// Factory ensures each business operation gets a fresh unit of work instance
// with proper isolation from other concurrent operations.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for unit of work instances over
// the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork instance ready for business transaction
// management. Each instance maintains its own transaction state.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return NewUnitOfWork(f.store)
}

// UnitOfWork coordinates one transaction over the kitchen store. Begin
// locks the store for writing and snapshots it; the aggregate accessors
// then hand out the live state, so domain mutations apply in place.
// Rollback restores the snapshot, Commit keeps the mutations. Either way
// the write lock is released and the instance can begin again.
type UnitOfWork struct {
	store  *Store
	active bool
	saved  snapshot
}

// NewUnitOfWork creates a unit of work over the given store. Most callers
// go through UnitOfWorkFactory; tests use this directly.
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin starts a kitchen transaction: it takes the store's write lock and
// snapshots the current state for rollback. Multiple calls to Begin on the
// same instance are safe and will not stack transactions.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.mu.Lock()
	uow.saved = uow.store.takeSnapshot()
	uow.active = true
	return nil
}

// Commit keeps every mutation made since Begin and releases the store.
// After commit, the transaction is closed and the instance may Begin again.
//
// Returns ErrNoActiveTransaction if no transaction is in flight.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.saved = snapshot{}
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Rollback discards every mutation made since Begin by restoring the
// snapshot, then releases the store.
//
// Returns ErrNoActiveTransaction if no transaction is in flight, which is
// the expected outcome of a deferred Rollback after a successful Commit.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.restore(uow.saved)
	uow.saved = snapshot{}
	uow.active = false
	uow.store.mu.Unlock()
	return nil
}

// Registry returns the station registry bound to the current transaction.
// Valid between Begin and Commit/Rollback.
func (uow *UnitOfWork) Registry() *station.Registry {
	return uow.store.registry
}

// Backup returns the backup ingredient pool bound to the current
// transaction. Valid between Begin and Commit/Rollback.
func (uow *UnitOfWork) Backup() *inventory.Backup {
	return uow.store.backup
}

// Orders returns the order queue bound to the current transaction.
// Valid between Begin and Commit/Rollback.
func (uow *UnitOfWork) Orders() *order.Queue {
	return uow.store.orders
}
