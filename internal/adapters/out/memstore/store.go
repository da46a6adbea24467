package memstore

import (
	"context"
	"sync"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/inventory"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/station"
	"bistro/internal/pkg/errs"
)

// Store holds the kitchen's live state: the station registry, the backup
// ingredient pool, and the order queue. The three aggregates form a single
// consistency boundary guarded by one reader/writer lock; writers take the
// lock through a UnitOfWork for the whole transaction, readers take shared
// views of committed state.
type Store struct {
	mu       sync.RWMutex
	registry *station.Registry
	backup   *inventory.Backup
	orders   *order.Queue
}

// NewStore creates an empty kitchen store: no stations, an empty backup
// pool, and an empty order queue.
func NewStore() *Store {
	return &Store{
		registry: station.NewRegistry(),
		backup:   inventory.NewBackup(),
		orders:   order.NewQueue(),
	}
}

// snapshot captures a deep copy of the kitchen's state so a transaction
// can be rolled back by restoring it wholesale.
type snapshot struct {
	registry *station.Registry
	backup   *inventory.Backup
	orders   *order.Queue
}

// takeSnapshot deep copies the current state. Callers must hold the write
// lock.
func (s *Store) takeSnapshot() snapshot {
	return snapshot{
		registry: s.registry.Clone(),
		backup:   s.backup.Clone(),
		orders:   s.orders.Clone(),
	}
}

// restore swaps the saved copies back in. Callers must hold the write lock.
func (s *Store) restore(sn snapshot) {
	s.registry = sn.registry
	s.backup = sn.backup
	s.orders = sn.orders
}

// ViewStations returns deep copies of every registered station in fallback
// order.
func (s *Store) ViewStations(_ context.Context) ([]*station.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stations := s.registry.Stations()
	views := make([]*station.Station, len(stations))
	for i, st := range stations {
		views[i] = st.Clone()
	}
	return views, nil
}

// ViewStation returns a deep copy of the named station.
//
// Returns:
//   - error: errs.ObjectNotFoundError if no such station is registered
func (s *Store) ViewStation(_ context.Context, name string) (*station.Station, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, err := s.registry.Find(name)
	if err != nil {
		return nil, errs.NewObjectNotFoundErrorWithCause("station", name, err)
	}
	return st.Clone(), nil
}

// ViewBackup returns the backup pool's stock lines in first-insertion
// order. Lines are value copies.
func (s *Store) ViewBackup(_ context.Context) ([]ingredient.Ingredient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.backup.Items(), nil
}

// ViewOrders returns deep copies of the queued tickets in queue order.
func (s *Store) ViewOrders(_ context.Context) ([]*order.Ticket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tickets := s.orders.Tickets()
	views := make([]*order.Ticket, len(tickets))
	for i, ticket := range tickets {
		views[i] = ticket.Clone()
	}
	return views, nil
}
