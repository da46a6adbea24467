// Package commands contains business operations that modify kitchen state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and domain mutation.
package commands

import (
	"context"

	"bistro/internal/core/domain/model/inventory"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/station"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers declare the narrowest interface covering the state they touch;
// one kitchen-wide unit of work implementation satisfies them all.
type (
	// TxManager handles transaction lifecycle.
	// Ensures atomic operations across the kitchen's aggregates.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RegistryAccessor provides access to the station registry within a transaction.
	RegistryAccessor interface {
		Registry() *station.Registry
	}

	// BackupAccessor provides access to the backup ingredient pool within a transaction.
	BackupAccessor interface {
		Backup() *inventory.Backup
	}

	// OrdersAccessor provides access to the order queue within a transaction.
	OrdersAccessor interface {
		Orders() *order.Queue
	}

	// StationsUoW manages transactions for commands that only touch the
	// station registry: registering, removing, promoting, merging,
	// assigning recipes, and restocking stations.
	StationsUoW interface {
		TxManager
		RegistryAccessor
	}

	// StationsUoWFactory creates new station unit of work instances.
	StationsUoWFactory interface {
		Create() StationsUoW
	}

	// BackupUoW manages transactions for commands that only touch the
	// backup ingredient pool.
	BackupUoW interface {
		TxManager
		BackupAccessor
	}

	// BackupUoWFactory creates new backup unit of work instances.
	BackupUoWFactory interface {
		Create() BackupUoW
	}

	// OrdersUoW manages transactions for commands that look recipes up in
	// the registry and mutate the order queue: placing an order and the
	// front-of-queue fast path.
	OrdersUoW interface {
		TxManager
		RegistryAccessor
		OrdersAccessor
	}

	// OrdersUoWFactory creates new order unit of work instances.
	OrdersUoWFactory interface {
		Create() OrdersUoW
	}

	// KitchenUoW manages transactions across the whole kitchen. A
	// fulfillment pass moves stock between stations, the backup pool, and
	// the queue, so all three commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   registry := uow.Registry()
	//   backup := uow.Backup()
	//   queue := uow.Orders()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	KitchenUoW interface {
		TxManager
		RegistryAccessor
		BackupAccessor
		OrdersAccessor
	}

	// KitchenUoWFactory creates new unit of work instances for
	// kitchen-wide operations.
	KitchenUoWFactory interface {
		Create() KitchenUoW
	}
)
