package station

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/errs"
)

var (
	// ErrInsufficientStock indicates that a deduction asked for more of an
	// ingredient than the stock currently holds.
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrStockIsNotConstructed indicates that the Stock was not properly
	// initialized through the NewStock constructor function.
	ErrStockIsNotConstructed = errors.New("Stock must be created via NewStock constructor")
)

// Stock tracks the ingredient quantities a station holds on hand.
// It is a domain entity owned by a Station; quantities change only through
// Add (replenishment) and Deduct (preparation).
//
// Stock keeps one line per ingredient name. Adding a lot for an ingredient
// already on hand increments the existing line and keeps its original unit
// price; the line order reflects first insertion and is preserved across
// increments and deductions. A line deducted to zero stays listed so the
// station's assortment remains visible.
//
// Example usage:
//
//	stock := station.NewStock()
//	lot, _ := ingredient.NewStock("flour", 10, 1.50)
//	if err := stock.Add(lot); err != nil {
//	    return err
//	}
//	if err := stock.Deduct("flour", 2); err != nil {
//	    return err
//	}
//	// stock.Held("flour") == 8
type Stock struct {
	// items holds one line per ingredient, in first-insertion order
	items []ingredient.Ingredient

	// index maps ingredient name to its position in items
	index map[string]int

	// guard ensures the entity was properly initialized
	guard kernel.ConstructorGuard
}

// NewStock creates an empty Stock entity.
// This is the only way to create a properly initialized Stock instance.
func NewStock() *Stock {
	return &Stock{
		index: make(map[string]int),
		guard: kernel.NewConstructorGuard(),
	}
}

// Validate checks if the Stock entity is in a valid state.
// This method ensures the entity was properly constructed through the
// NewStock constructor function.
//
// Returns:
//   - error: ErrStockIsNotConstructed if not properly initialized
func (s *Stock) Validate() error {
	if s == nil {
		return ErrStockIsNotConstructed
	}
	return s.guard.Validate(ErrStockIsNotConstructed)
}

// Add deposits a lot into the stock.
// If a line for the ingredient already exists its held quantity is
// incremented and its original unit price is kept; otherwise a new line
// is appended.
//
// Parameters:
//   - lot: Stock-role ingredient with a positive held quantity
//
// Returns:
//   - error: Validation error if the lot is invalid or carries no quantity
func (s *Stock) Add(lot ingredient.Ingredient) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := lot.Validate(); err != nil {
		return err
	}
	if lot.Held() <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"lot is invalid",
			fmt.Errorf("%d is not greater than 0", lot.Held()),
		)
	}

	if i, ok := s.index[lot.Name()]; ok {
		current := s.items[i]
		merged, err := ingredient.NewIngredient(
			current.Name(), current.Required(), current.Held()+lot.Held(), current.UnitPrice())
		if err != nil {
			return err
		}
		s.items[i] = merged
		return nil
	}

	s.index[lot.Name()] = len(s.items)
	s.items = append(s.items, lot)
	return nil
}

// Held returns the quantity currently on hand for the named ingredient.
// Ingredients with no line report zero.
func (s *Stock) Held(name string) int {
	if i, ok := s.index[name]; ok {
		return s.items[i].Held()
	}
	return 0
}

// Deduct removes a quantity of the named ingredient from the stock.
// The line stays listed when deducted to exactly zero.
//
// Parameters:
//   - name: Ingredient name to deduct
//   - quantity: Amount to remove (must be positive)
//
// Returns:
//   - error: ErrInsufficientStock if the line is absent or holds less than quantity
func (s *Stock) Deduct(name string, quantity int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	i, ok := s.index[name]
	if !ok || s.items[i].Held() < quantity {
		return fmt.Errorf("%w: %s", ErrInsufficientStock, name)
	}

	current := s.items[i]
	reduced, err := ingredient.NewIngredient(
		current.Name(), current.Required(), current.Held()-quantity, current.UnitPrice())
	if err != nil {
		return err
	}
	s.items[i] = reduced
	return nil
}

// Items returns a copy of the stock lines in first-insertion order.
// Mutating the returned slice does not affect the stock.
func (s *Stock) Items() []ingredient.Ingredient {
	items := make([]ingredient.Ingredient, len(s.items))
	copy(items, s.items)
	return items
}

// Clone returns a deep copy of the stock.
func (s *Stock) Clone() *Stock {
	clone := NewStock()
	clone.items = make([]ingredient.Ingredient, len(s.items))
	copy(clone.items, s.items)
	for name, i := range s.index {
		clone.index[name] = i
	}
	return clone
}
