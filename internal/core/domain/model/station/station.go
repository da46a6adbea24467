package station

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// Domain errors for station operations.
var (
	// ErrNameIsRequired is returned when attempting to create a station without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStationIsNotConstructed is returned when using an improperly initialized Station.
	ErrStationIsNotConstructed = errors.New("Station must be created via NewStation constructor")
	// ErrRecipeNotAssigned is returned when a recipe is requested at a station
	// that does not have it assigned.
	ErrRecipeNotAssigned = errors.New("recipe is not assigned to this station")
)

// Shortfall reports how much of one ingredient a station is missing
// to prepare a recipe. Quantities are always positive; ingredients the
// station holds enough of are omitted from shortfall listings.
type Shortfall struct {
	// Name is the ingredient name.
	Name string
	// Quantity is the missing amount (required minus held, floored at zero).
	Quantity int
}

// Station represents a kitchen station in the bistro.
// It is an aggregate root that manages the station's identity, its assigned
// recipes, and the ingredient stock it holds on hand.
//
// Key responsibilities:
//   - Managing station identity (name) and the set of recipes it can prepare
//   - Tracking ingredient stock and accepting replenishment lots
//   - Deciding whether a recipe can be completed with current stock
//   - Preparing recipes by atomically deducting the required quantities
//
// Business rules:
//   - Station must have a non-empty name
//   - A recipe can be assigned at most once; re-assignment is a no-op
//   - A recipe can be prepared only if it is assigned and every required
//     ingredient is held in sufficient quantity
//   - Preparation deducts all required quantities or none
//
// Example usage:
//
//	grill, err := station.NewStation("Grill")
//	if err != nil {
//	    // Handle construction error
//	}
//	_ = grill.AssignRecipe(burger)
//	_ = grill.Replenish(beefLot)
//	if grill.CanComplete("Classic Burger") {
//	    _ = grill.Prepare("Classic Burger")
//	}
type Station struct {
	// name uniquely identifies the station within a registry
	name string
	// stock tracks the ingredient quantities on hand
	stock *Stock
	// recipes are the dishes this station knows how to prepare
	recipes []*recipe.Recipe
	// guard ensures the station was properly constructed
	guard guard.ConstructorGuard
}

// NewStation creates a new Station with the specified name.
// This is the only way to create a valid Station instance.
// The station starts with empty stock and no assigned recipes.
//
// Parameters:
//   - name: Human-readable station name (must be non-empty)
//
// Returns:
//   - *Station: Properly initialized station aggregate
//   - error: Validation error if the name is empty
func NewStation(name string) (*Station, error) {
	st := &Station{
		stock: NewStock(),
		guard: guard.NewConstructorGuard(),
	}

	if err := st.setName(name); err != nil {
		return nil, err
	}

	return st, nil
}

// IsEqual compares two stations by their identity.
// Stations are aggregates identified by name.
func (s *Station) IsEqual(other *Station) bool {
	return s.name == other.name
}

// Validate checks if the Station aggregate is in a valid state.
// This method ensures the aggregate was properly constructed through the
// NewStation constructor function.
//
// Returns:
//   - error: ErrStationIsNotConstructed if not properly initialized
func (s *Station) Validate() error {
	if s == nil {
		return ErrStationIsNotConstructed
	}
	return s.guard.Validate(ErrStationIsNotConstructed)
}

// Name returns the station name.
func (s *Station) Name() string {
	return s.name
}

// Recipes returns a copy of the station's assigned recipes in assignment order.
// Mutating the returned slice does not affect the station.
func (s *Station) Recipes() []*recipe.Recipe {
	recipes := make([]*recipe.Recipe, len(s.recipes))
	copy(recipes, s.recipes)
	return recipes
}

// StockItems returns a copy of the station's stock lines in first-insertion order.
func (s *Station) StockItems() []ingredient.Ingredient {
	return s.stock.Items()
}

// Held returns the quantity of the named ingredient the station holds.
func (s *Station) Held(name string) int {
	return s.stock.Held(name)
}

// HasRecipe reports whether a recipe with the given name is assigned
// to this station.
func (s *Station) HasRecipe(name string) bool {
	for _, rcp := range s.recipes {
		if rcp.Name() == name {
			return true
		}
	}
	return false
}

// AssignedRecipe returns the station's definition of the named recipe.
//
// Returns:
//   - *recipe.Recipe: The assigned recipe definition
//   - error: ErrRecipeNotAssigned if the recipe is not assigned here
func (s *Station) AssignedRecipe(name string) (*recipe.Recipe, error) {
	for _, rcp := range s.recipes {
		if rcp.Name() == name {
			return rcp, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrRecipeNotAssigned, name)
}

// AssignRecipe adds a recipe to the set this station can prepare.
// Assigning a recipe whose name is already assigned is a no-op success,
// keeping the original definition.
//
// Parameters:
//   - rcp: The recipe to assign (must be properly constructed)
//
// Returns:
//   - error: Validation error if the recipe is invalid
func (s *Station) AssignRecipe(rcp *recipe.Recipe) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if rcp == nil {
		return errs.NewValueIsRequiredError("recipe is required")
	}
	if err := rcp.Validate(); err != nil {
		return err
	}

	if s.HasRecipe(rcp.Name()) {
		return nil
	}

	s.recipes = append(s.recipes, rcp)
	return nil
}

// Replenish deposits a lot of an ingredient into the station's stock.
//
// Parameters:
//   - lot: Stock-role ingredient with a positive held quantity
//
// Returns:
//   - error: Validation error if the lot is invalid
func (s *Station) Replenish(lot ingredient.Ingredient) error {
	if err := s.Validate(); err != nil {
		return err
	}

	return s.stock.Add(lot)
}

// Shortfalls computes, per required ingredient of the named recipe, how
// much the station is missing. Ingredients held in sufficient quantity
// are omitted; the listing preserves the recipe's requirement order.
//
// Parameters:
//   - recipeName: Name of an assigned recipe
//
// Returns:
//   - []Shortfall: Missing quantities, empty when the recipe can be completed
//   - error: ErrRecipeNotAssigned if the recipe is not assigned here
func (s *Station) Shortfalls(recipeName string) ([]Shortfall, error) {
	rcp, err := s.AssignedRecipe(recipeName)
	if err != nil {
		return nil, err
	}
	return s.ShortfallsFor(rcp)
}

// ShortfallsFor computes shortfalls against the given recipe definition
// instead of the station's own copy. Order tickets carry their own,
// possibly dietary-adjusted, definition of a recipe; fulfillment honors
// that definition, so the station must still offer the recipe by name
// but the requirements checked are the caller's.
//
// Returns:
//   - []Shortfall: Missing quantities, empty when the recipe can be completed
//   - error: ErrRecipeNotAssigned if no recipe with that name is assigned here
func (s *Station) ShortfallsFor(rcp *recipe.Recipe) ([]Shortfall, error) {
	if rcp == nil {
		return nil, errs.NewValueIsRequiredError("recipe is required")
	}
	if !s.HasRecipe(rcp.Name()) {
		return nil, fmt.Errorf("%w: %s", ErrRecipeNotAssigned, rcp.Name())
	}

	var shortfalls []Shortfall
	for _, req := range rcp.Requirements() {
		missing := req.Required() - s.stock.Held(req.Name())
		if missing > 0 {
			shortfalls = append(shortfalls, Shortfall{Name: req.Name(), Quantity: missing})
		}
	}
	return shortfalls, nil
}

// CanComplete reports whether the station can prepare the named recipe
// right now: the recipe must be assigned and every required ingredient
// held in at least the required quantity.
func (s *Station) CanComplete(recipeName string) bool {
	rcp, err := s.AssignedRecipe(recipeName)
	if err != nil {
		return false
	}
	return s.CanCompleteRecipe(rcp)
}

// CanCompleteRecipe reports whether the station can prepare the given
// recipe definition right now. A recipe with that name must be assigned
// here, and every requirement of the given definition must be held.
func (s *Station) CanCompleteRecipe(rcp *recipe.Recipe) bool {
	if rcp == nil || !s.HasRecipe(rcp.Name()) {
		return false
	}

	for _, req := range rcp.Requirements() {
		if s.stock.Held(req.Name()) < req.Required() {
			return false
		}
	}
	return true
}

// Prepare makes the named recipe, deducting every required ingredient
// quantity from the station's stock. The deduction is atomic: when any
// ingredient is insufficient nothing is deducted.
//
// Parameters:
//   - recipeName: Name of an assigned recipe
//
// Returns:
//   - error: ErrRecipeNotAssigned if the recipe is not assigned here,
//     ErrInsufficientStock if any required ingredient is short
func (s *Station) Prepare(recipeName string) error {
	rcp, err := s.AssignedRecipe(recipeName)
	if err != nil {
		return err
	}
	return s.PrepareRecipe(rcp)
}

// PrepareRecipe makes the given recipe definition, deducting its
// requirements from the station's stock. A recipe with that name must
// be assigned here; the quantities deducted are the given definition's,
// which lets tickets carry dietary-adjusted copies. The deduction is
// atomic: when any ingredient is insufficient nothing is deducted.
//
// Returns:
//   - error: ErrRecipeNotAssigned if no recipe with that name is assigned
//     here, ErrInsufficientStock if any required ingredient is short
func (s *Station) PrepareRecipe(rcp *recipe.Recipe) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if rcp == nil {
		return errs.NewValueIsRequiredError("recipe is required")
	}
	if err := rcp.Validate(); err != nil {
		return err
	}
	if !s.HasRecipe(rcp.Name()) {
		return fmt.Errorf("%w: %s", ErrRecipeNotAssigned, rcp.Name())
	}

	for _, req := range rcp.Requirements() {
		if s.stock.Held(req.Name()) < req.Required() {
			return fmt.Errorf("%w: %s", ErrInsufficientStock, req.Name())
		}
	}

	for _, req := range rcp.Requirements() {
		if err := s.stock.Deduct(req.Name(), req.Required()); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of the station, including its stock and
// its own copies of the assigned recipes.
func (s *Station) Clone() *Station {
	clone := &Station{
		name:  s.name,
		stock: s.stock.Clone(),
		guard: s.guard,
	}
	clone.recipes = make([]*recipe.Recipe, len(s.recipes))
	for i, rcp := range s.recipes {
		clone.recipes[i] = rcp.Clone()
	}
	return clone
}

// absorb transfers everything the other station has into this one:
// assigned recipes (duplicates are skipped) and all stock lines.
// Used by Registry.Merge.
func (s *Station) absorb(other *Station) error {
	for _, rcp := range other.recipes {
		if err := s.AssignRecipe(rcp); err != nil {
			return err
		}
	}
	for _, item := range other.stock.Items() {
		if item.Held() <= 0 {
			continue
		}
		if err := s.stock.Add(item); err != nil {
			return err
		}
	}
	return nil
}

func (s *Station) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	s.name = name
	return nil
}
