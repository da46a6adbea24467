package ingredient

import (
	"errors"
	"fmt"

	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// ErrIngredientIsNotConstructed is returned when attempting to use an improperly initialized Ingredient.
// Ingredients must be created using NewIngredient, NewRequirement, or NewStock constructors.
var ErrIngredientIsNotConstructed = errs.NewValueIsRequiredError(
	"ingredient must be created via NewIngredient, NewRequirement, or NewStock constructors")

// Ingredient represents a kitchen good with a name, the quantity a recipe
// requires, the quantity currently held, and a unit price.
// Ingredient is an immutable value object; use the constructors to create
// instances with the semantics of the role they play:
//
//   - requirement: required > 0, held = 0 (what a recipe needs)
//   - stock / replenishment lot: held > 0, required = 0 (what is on hand)
//
// The zero value of Ingredient is invalid and will fail validation.
//
// Example:
//
//	flour, err := ingredient.NewRequirement("flour", 2, 1.50)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Need: %s", flour) // Output: Need: Ingredient(flour, required=2, held=0)
type Ingredient struct { //nolint:recvcheck //using for validation
	name      string
	required  int
	held      int
	unitPrice float64
	guard     guard.ConstructorGuard
}

// NewIngredient creates a new Ingredient with explicit required and held quantities.
// This is the general-purpose constructor; prefer NewRequirement or NewStock when
// the role of the ingredient is known.
//
// Parameters:
//   - name: The ingredient name (must not be empty)
//   - required: Quantity a recipe requires (must not be negative)
//   - held: Quantity currently on hand (must not be negative)
//   - unitPrice: Price per unit (must not be negative)
//
// Returns:
//   - Ingredient: A valid ingredient instance
//   - error: Validation error if any argument is invalid
func NewIngredient(name string, required int, held int, unitPrice float64) (Ingredient, error) {
	ing := Ingredient{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ing.setName(name),
		ing.setRequired(required),
		ing.setHeld(held),
		ing.setUnitPrice(unitPrice),
	); err != nil {
		return Ingredient{}, err
	}

	return ing, nil
}

// NewRequirement creates an Ingredient in the requirement role: a recipe line
// stating how much of the ingredient a dish needs. The held quantity is zero.
//
// Parameters:
//   - name: The ingredient name (must not be empty)
//   - required: Quantity the recipe needs (must be greater than 0)
//   - unitPrice: Price per unit (must not be negative)
//
// Returns:
//   - Ingredient: A valid requirement ingredient
//   - error: Validation error if any argument is invalid
//
// Example:
//
//	tomato, err := ingredient.NewRequirement("tomato", 3, 0.80)
func NewRequirement(name string, required int, unitPrice float64) (Ingredient, error) {
	if required <= 0 {
		return Ingredient{}, errs.NewValueIsInvalidErrorWithCause(
			"required is invalid",
			fmt.Errorf("%d is not greater than 0", required),
		)
	}

	return NewIngredient(name, required, 0, unitPrice)
}

// NewStock creates an Ingredient in the stock role: a quantity of the
// ingredient held on hand, either at a station or in the backup pool.
// Replenishment lots produced by backup withdrawals use this role as well.
// The required quantity is zero.
//
// Parameters:
//   - name: The ingredient name (must not be empty)
//   - held: Quantity on hand (must be greater than 0)
//   - unitPrice: Price per unit (must not be negative)
//
// Returns:
//   - Ingredient: A valid stock ingredient
//   - error: Validation error if any argument is invalid
//
// Example:
//
//	cheese, err := ingredient.NewStock("cheese", 10, 2.25)
func NewStock(name string, held int, unitPrice float64) (Ingredient, error) {
	if held <= 0 {
		return Ingredient{}, errs.NewValueIsInvalidErrorWithCause(
			"held is invalid",
			fmt.Errorf("%d is not greater than 0", held),
		)
	}

	return NewIngredient(name, 0, held, unitPrice)
}

// Validate checks if the Ingredient was properly constructed using a constructor.
// The zero value of Ingredient is invalid and will fail this validation.
//
// Returns:
//   - error: ErrIngredientIsNotConstructed if the ingredient was not properly initialized, nil otherwise
func (i Ingredient) Validate() error {
	return i.guard.Validate(ErrIngredientIsNotConstructed)
}

// Name returns the ingredient name.
func (i Ingredient) Name() string {
	return i.name
}

// Required returns the quantity a recipe requires.
// For stock ingredients this is zero.
func (i Ingredient) Required() int {
	return i.required
}

// Held returns the quantity currently on hand.
// For recipe requirements this is zero.
func (i Ingredient) Held() int {
	return i.held
}

// UnitPrice returns the price per unit of the ingredient.
func (i Ingredient) UnitPrice() float64 {
	return i.unitPrice
}

// String returns a human-readable representation of the Ingredient.
// The format is "Ingredient(name, required=R, held=H)" which is useful
// for debugging and logging. This method implements the fmt.Stringer interface.
func (i Ingredient) String() string {
	return fmt.Sprintf("Ingredient(%s, required=%d, held=%d)", i.name, i.required, i.held)
}

// IsEqual compares two ingredients for equality.
// Two ingredients are equal if their name, quantities, and unit price all match.
// Both ingredients must be properly constructed for the comparison to succeed.
//
// Parameters:
//   - other: The Ingredient to compare with
//
// Returns:
//   - bool: true if the ingredients are equal, false otherwise
//   - error: Validation error if either ingredient is improperly constructed
func (i Ingredient) IsEqual(other Ingredient) (bool, error) {
	if err := errors.Join(i.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return i == other, nil
}

func (i *Ingredient) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name is required")
	}

	i.name = name
	return nil
}

func (i *Ingredient) setRequired(required int) error {
	if required < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"required is invalid",
			fmt.Errorf("%d is negative", required),
		)
	}

	i.required = required
	return nil
}

func (i *Ingredient) setHeld(held int) error {
	if held < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"held is invalid",
			fmt.Errorf("%d is negative", held),
		)
	}

	i.held = held
	return nil
}

func (i *Ingredient) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%f is negative", unitPrice),
		)
	}

	i.unitPrice = unitPrice
	return nil
}
