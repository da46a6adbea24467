package recipe

import (
	"errors"
	"fmt"
	"strings"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// Domain errors for recipe operations.
var (
	// ErrNameIsRequired is returned when attempting to create a recipe without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrRequirementsAreRequired is returned when attempting to create a recipe without ingredients.
	ErrRequirementsAreRequired = errs.NewValueIsRequiredError("requirements")
	// ErrRecipeIsNotConstructed is returned when using an improperly initialized Recipe.
	ErrRecipeIsNotConstructed = errors.New("Recipe must be created via NewRecipe constructor")
)

// Recipe represents a preparable dish in the bistro.
// It is an aggregate root that manages the dish's identity, the ingredient
// quantities it requires, and its presentation attributes.
//
// Key responsibilities:
//   - Managing recipe identity (name) and presentation (cuisine, price, prep time)
//   - Holding the list of ingredient requirements a station must satisfy
//   - Applying dietary adjustments that reshape the requirement list
//
// Business rules:
//   - Recipe must have a non-empty name and at least one requirement
//   - Requirement ingredient names are unique within a recipe
//   - Preparation time must be positive; price must not be negative
//   - Dietary adjustments may remove requirements but never invent them
//
// Example usage:
//
//	flour, _ := ingredient.NewRequirement("flour", 2, 1.50)
//	tomato, _ := ingredient.NewRequirement("tomato", 3, 0.80)
//	pizza, err := recipe.NewRecipe("Margherita Pizza",
//	    []ingredient.Ingredient{flour, tomato}, 20, 12.99, recipe.Italian)
//	if err != nil {
//	    // Handle construction error
//	}
type Recipe struct {
	// name uniquely identifies the recipe on the menu
	name string
	// requirements are the ingredient quantities the dish needs
	requirements []ingredient.Ingredient
	// prepMinutes is the preparation time in minutes
	prepMinutes int
	// price is the menu price of the dish
	price float64
	// cuisine classifies the dish for display and grouping
	cuisine Classification
	// guard ensures the recipe was properly constructed
	guard guard.ConstructorGuard
}

// NewRecipe creates a new Recipe with the specified parameters.
// This is the only way to create a valid Recipe instance.
//
// The constructor validates all input parameters and copies the requirement
// slice so later changes to the caller's slice do not leak into the recipe.
//
// Parameters:
//   - name: Menu name of the dish (must be non-empty)
//   - requirements: Ingredient quantities the dish needs (at least one, unique names)
//   - prepMinutes: Preparation time in minutes (must be positive)
//   - price: Menu price (must not be negative)
//   - cuisine: Cuisine classification (must be valid)
//
// Returns:
//   - *Recipe: Properly initialized recipe aggregate
//   - error: Aggregated validation errors, if any
func NewRecipe(
	name string,
	requirements []ingredient.Ingredient,
	prepMinutes int,
	price float64,
	cuisine Classification,
) (*Recipe, error) {
	rcp := &Recipe{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		rcp.setName(name),
		rcp.setRequirements(requirements),
		rcp.setPrepMinutes(prepMinutes),
		rcp.setPrice(price),
		rcp.setCuisine(cuisine),
	); err != nil {
		return nil, err
	}

	return rcp, nil
}

// IsEqual compares two recipes by their identity.
// Recipes are aggregates identified by name: two recipes with the same
// name represent the same dish even if their requirements diverged.
//
// Parameters:
//   - other: The Recipe to compare with
//
// Returns:
//   - bool: true if both recipes carry the same name
func (r *Recipe) IsEqual(other *Recipe) bool {
	return r.name == other.name
}

// Validate checks if the Recipe aggregate is in a valid state.
// This method ensures the aggregate was properly constructed through the
// NewRecipe constructor function.
//
// Returns:
//   - error: ErrRecipeIsNotConstructed if not properly initialized
func (r *Recipe) Validate() error {
	if r == nil {
		return ErrRecipeIsNotConstructed
	}
	return r.guard.Validate(ErrRecipeIsNotConstructed)
}

// Name returns the menu name of the dish.
func (r *Recipe) Name() string {
	return r.name
}

// Requirements returns a copy of the recipe's ingredient requirements.
// The copy preserves the order requirements were declared in; mutating
// it does not affect the recipe.
func (r *Recipe) Requirements() []ingredient.Ingredient {
	requirements := make([]ingredient.Ingredient, len(r.requirements))
	copy(requirements, r.requirements)
	return requirements
}

// PrepMinutes returns the preparation time in minutes.
func (r *Recipe) PrepMinutes() int {
	return r.prepMinutes
}

// Price returns the menu price of the dish.
func (r *Recipe) Price() float64 {
	return r.price
}

// Cuisine returns the cuisine classification of the dish.
func (r *Recipe) Cuisine() Classification {
	return r.cuisine
}

// Display renders a human-readable card for the dish, suitable for
// menus and kitchen print-outs.
//
// Example output:
//
//	Margherita Pizza (Italian)
//	  prep time: 20 min
//	  price: $12.99
//	  ingredients: flour x2, tomato x3
func (r *Recipe) Display() string {
	lines := make([]string, 0, len(r.requirements))
	for _, req := range r.requirements {
		lines = append(lines, fmt.Sprintf("%s x%d", req.Name(), req.Required()))
	}

	return fmt.Sprintf("%s (%s)\n  prep time: %d min\n  price: $%.2f\n  ingredients: %s",
		r.name, r.cuisine, r.prepMinutes, r.price, strings.Join(lines, ", "))
}

// Accommodate applies the built-in dietary behaviour to the recipe:
// every requirement named in the request's exclusion list is removed.
// Exclusions that name no requirement are ignored.
//
// The requirement list may become empty after accommodation; such a
// recipe can be prepared by any station it is assigned to.
//
// Parameters:
//   - request: The dietary request to apply
//
// Returns:
//   - error: Validation error if the recipe is improperly constructed
func (r *Recipe) Accommodate(request DietaryRequest) error {
	if err := r.Validate(); err != nil {
		return err
	}

	for _, exclusion := range request.Exclusions {
		r.RemoveRequirement(exclusion)
	}

	return nil
}

// RemoveRequirement removes the requirement with the given ingredient name.
// The relative order of the remaining requirements is preserved.
//
// Parameters:
//   - name: Ingredient name to remove
//
// Returns:
//   - bool: true if a requirement was removed, false if none matched
func (r *Recipe) RemoveRequirement(name string) bool {
	for i, req := range r.requirements {
		if req.Name() == name {
			r.requirements = append(r.requirements[:i], r.requirements[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the recipe.
// Cloning is used when a recipe definition is handed to an order ticket:
// the ticket owns its copy, so later menu changes or dietary adjustments
// on one side never leak to the other.
func (r *Recipe) Clone() *Recipe {
	clone := &Recipe{
		name:        r.name,
		prepMinutes: r.prepMinutes,
		price:       r.price,
		cuisine:     r.cuisine,
		guard:       r.guard,
	}
	clone.requirements = make([]ingredient.Ingredient, len(r.requirements))
	copy(clone.requirements, r.requirements)

	return clone
}

func (r *Recipe) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}

func (r *Recipe) setRequirements(requirements []ingredient.Ingredient) error {
	if len(requirements) == 0 {
		return ErrRequirementsAreRequired
	}

	seen := make(map[string]bool, len(requirements))
	for _, req := range requirements {
		if err := req.Validate(); err != nil {
			return err
		}
		if req.Required() <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"requirements are invalid",
				fmt.Errorf("%s requires %d, expected a positive quantity", req.Name(), req.Required()),
			)
		}
		if seen[req.Name()] {
			return errs.NewValueIsInvalidErrorWithCause(
				"requirements are invalid",
				fmt.Errorf("%s is listed more than once", req.Name()),
			)
		}
		seen[req.Name()] = true
	}

	r.requirements = make([]ingredient.Ingredient, len(requirements))
	copy(r.requirements, requirements)
	return nil
}

func (r *Recipe) setPrepMinutes(prepMinutes int) error {
	if prepMinutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"prepMinutes is invalid",
			fmt.Errorf("%d is not greater than 0", prepMinutes),
		)
	}

	r.prepMinutes = prepMinutes
	return nil
}

func (r *Recipe) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%f is negative", price),
		)
	}

	r.price = price
	return nil
}

func (r *Recipe) setCuisine(cuisine Classification) error {
	if err := cuisine.Validate(); err != nil {
		return err
	}

	r.cuisine = cuisine
	return nil
}
