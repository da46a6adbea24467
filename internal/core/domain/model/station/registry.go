package station

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// Domain errors for registry operations.
var (
	// ErrStationAlreadyRegistered is returned when adding a station whose
	// name is already present in the registry.
	ErrStationAlreadyRegistered = errors.New("station is already registered")
	// ErrStationNotFound is returned when a requested station cannot be found.
	ErrStationNotFound = errors.New("station not found")
	// ErrRecipeNotOffered is returned when no station in the registry has
	// the requested recipe assigned.
	ErrRecipeNotOffered = errors.New("recipe is not offered by any station")
	// ErrRegistryIsNotConstructed is returned when using an improperly initialized Registry.
	ErrRegistryIsNotConstructed = errors.New("Registry must be created via NewRegistry constructor")
)

// Registry keeps the bistro's stations in a deliberate order.
// The order is significant: it is the order stations are tried in when
// fulfilling an order, so moving a station to the front prioritizes it.
//
// Station names are unique within a registry. Lookups go through a
// name-to-index map; mutations keep the map consistent with the slice.
//
// Key responsibilities:
//   - Registering and removing stations, enforcing name uniqueness
//   - Preserving and reshaping the fallback order (MoveToFront)
//   - Merging one station's recipes and stock into another
//   - Routing recipe assignment, replenishment, and preparation to stations
type Registry struct {
	// stations holds the fleet in fallback-attempt order
	stations []*Station
	// index maps station name to its position in stations
	index map[string]int
	// guard ensures the registry was properly constructed
	guard guard.ConstructorGuard
}

// NewRegistry creates an empty Registry.
// This is the only way to create a valid Registry instance.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[string]int),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Registry is in a valid state.
//
// Returns:
//   - error: ErrRegistryIsNotConstructed if not properly initialized
func (r *Registry) Validate() error {
	if r == nil {
		return ErrRegistryIsNotConstructed
	}
	return r.guard.Validate(ErrRegistryIsNotConstructed)
}

// Len returns the number of registered stations.
func (r *Registry) Len() int {
	return len(r.stations)
}

// Stations returns a copy of the station list in fallback order.
// Mutating the returned slice does not affect the registry.
func (r *Registry) Stations() []*Station {
	stations := make([]*Station, len(r.stations))
	copy(stations, r.stations)
	return stations
}

// Add registers a station at the end of the fallback order.
//
// Parameters:
//   - st: The station to register (must be properly constructed)
//
// Returns:
//   - error: ErrStationAlreadyRegistered if a station with the same name exists
func (r *Registry) Add(st *Station) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if st == nil {
		return errs.NewValueIsRequiredError("station is required")
	}
	if err := st.Validate(); err != nil {
		return err
	}

	if _, ok := r.index[st.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrStationAlreadyRegistered, st.Name())
	}

	r.index[st.Name()] = len(r.stations)
	r.stations = append(r.stations, st)
	return nil
}

// Remove deletes the named station from the registry.
// The relative order of the remaining stations is preserved.
//
// Returns:
//   - error: ErrStationNotFound if no station carries the name
func (r *Registry) Remove(name string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	i, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStationNotFound, name)
	}

	r.stations = append(r.stations[:i], r.stations[i+1:]...)
	r.reindex()
	return nil
}

// Find returns the named station.
//
// Returns:
//   - *Station: The registered station
//   - error: ErrStationNotFound if no station carries the name
func (r *Registry) Find(name string) (*Station, error) {
	i, ok := r.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStationNotFound, name)
	}
	return r.stations[i], nil
}

// IndexOf returns the position of the named station in the fallback order.
//
// Returns:
//   - int: Zero-based position
//   - error: ErrStationNotFound if no station carries the name
func (r *Registry) IndexOf(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrStationNotFound, name)
	}
	return i, nil
}

// MoveToFront promotes the named station to the head of the fallback
// order, shifting the stations before it back by one. Promoting the
// station already at the front is a no-op success.
//
// Returns:
//   - error: ErrStationNotFound if no station carries the name
func (r *Registry) MoveToFront(name string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	i, ok := r.index[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrStationNotFound, name)
	}
	if i == 0 {
		return nil
	}

	st := r.stations[i]
	copy(r.stations[1:i+1], r.stations[:i])
	r.stations[0] = st
	r.reindex()
	return nil
}

// Merge transfers everything the source station has into the destination
// station: its assigned recipes (duplicates are skipped) and all of its
// stock. The source station is removed afterwards; the destination keeps
// its position in the fallback order.
//
// Parameters:
//   - destination: Name of the surviving station
//   - source: Name of the station to dissolve
//
// Returns:
//   - error: ErrStationNotFound if either name is absent, or a validation
//     error if destination and source are the same station
func (r *Registry) Merge(destination string, source string) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if destination == source {
		return errs.NewValueIsInvalidErrorWithCause(
			"source is invalid",
			fmt.Errorf("cannot merge station %q into itself", source),
		)
	}

	dst, err := r.Find(destination)
	if err != nil {
		return err
	}
	src, err := r.Find(source)
	if err != nil {
		return err
	}

	if err := dst.absorb(src); err != nil {
		return err
	}
	return r.Remove(source)
}

// FindRecipe returns the first assigned definition of the named recipe,
// walking stations in fallback order. Used when an order is placed to
// hand the ticket its own copy of the dish definition.
//
// Returns:
//   - *recipe.Recipe: The first station's definition of the recipe
//   - error: ErrRecipeNotOffered if no station has the recipe assigned
func (r *Registry) FindRecipe(recipeName string) (*recipe.Recipe, error) {
	for _, st := range r.stations {
		if rcp, err := st.AssignedRecipe(recipeName); err == nil {
			return rcp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRecipeNotOffered, recipeName)
}

// AssignRecipe assigns a recipe to the named station.
//
// Returns:
//   - error: ErrStationNotFound if the station is absent, or the
//     station's assignment error
func (r *Registry) AssignRecipe(stationName string, rcp *recipe.Recipe) error {
	st, err := r.Find(stationName)
	if err != nil {
		return err
	}
	return st.AssignRecipe(rcp)
}

// ReplenishStation deposits a lot into the named station's stock.
//
// Returns:
//   - error: ErrStationNotFound if the station is absent, or the
//     station's replenishment error
func (r *Registry) ReplenishStation(stationName string, lot ingredient.Ingredient) error {
	st, err := r.Find(stationName)
	if err != nil {
		return err
	}
	return st.Replenish(lot)
}

// CanComplete reports whether any station in the registry can prepare
// the named recipe with its current stock.
func (r *Registry) CanComplete(recipeName string) bool {
	for _, st := range r.stations {
		if st.CanComplete(recipeName) {
			return true
		}
	}
	return false
}

// PrepareAt prepares the named recipe at the named station.
//
// Returns:
//   - error: ErrStationNotFound if the station is absent, or the
//     station's preparation error
func (r *Registry) PrepareAt(stationName string, recipeName string) error {
	st, err := r.Find(stationName)
	if err != nil {
		return err
	}
	return st.Prepare(recipeName)
}

// Clone returns a deep copy of the registry and every station in it.
func (r *Registry) Clone() *Registry {
	clone := NewRegistry()
	clone.stations = make([]*Station, len(r.stations))
	for i, st := range r.stations {
		clone.stations[i] = st.Clone()
	}
	clone.reindex()
	return clone
}

// reindex rebuilds the name-to-position map after a structural change.
func (r *Registry) reindex() {
	clear(r.index)
	for i, st := range r.stations {
		r.index[st.Name()] = i
	}
}
