package inventory

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// Domain errors for backup inventory operations.
var (
	// ErrIngredientNotFound is returned when withdrawing an ingredient
	// the pool has no entry for.
	ErrIngredientNotFound = errors.New("ingredient not found in backup inventory")
	// ErrInsufficientBackupStock is returned when a withdrawal asks for more
	// than the pool holds.
	ErrInsufficientBackupStock = errors.New("insufficient backup stock")
	// ErrInvalidQuantity is returned when a withdrawal asks for a
	// non-positive quantity.
	ErrInvalidQuantity = errors.New("withdrawal quantity must be positive")
	// ErrBackupIsNotConstructed is returned when using an improperly initialized Backup.
	ErrBackupIsNotConstructed = errors.New("Backup must be created via NewBackup constructor")
)

// Backup is the bistro's shared reserve of ingredients.
// Stations draw from it through withdrawals when their own stock cannot
// cover a recipe; restocking commands deposit into it.
//
// The pool keeps one entry per ingredient name in first-insertion order.
// Withdrawals are all-or-nothing and an entry drawn down to exactly zero
// is removed, so the pool never lists empty entries.
//
// Example usage:
//
//	backup := inventory.NewBackup()
//	lot, _ := ingredient.NewStock("flour", 50, 1.20)
//	_ = backup.Add(lot)
//
//	withdrawn, err := backup.Withdraw("flour", 8)
//	if err != nil {
//	    return err
//	}
//	// withdrawn is a lot of 8 flour at the pool's unit price
type Backup struct {
	// items holds one entry per ingredient, in first-insertion order
	items []ingredient.Ingredient
	// index maps ingredient name to its position in items
	index map[string]int
	// guard ensures the pool was properly constructed
	guard guard.ConstructorGuard
}

// NewBackup creates an empty Backup pool.
// This is the only way to create a valid Backup instance.
func NewBackup() *Backup {
	return &Backup{
		index: make(map[string]int),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Backup pool is in a valid state.
//
// Returns:
//   - error: ErrBackupIsNotConstructed if not properly initialized
func (b *Backup) Validate() error {
	return b.guard.Validate(ErrBackupIsNotConstructed)
}

// Add deposits a lot into the pool.
// If an entry for the ingredient already exists its quantity is
// incremented and its original unit price is kept; otherwise a new
// entry is appended.
//
// Parameters:
//   - lot: Stock-role ingredient with a positive held quantity
//
// Returns:
//   - error: Validation error if the lot is invalid or carries no quantity
func (b *Backup) Add(lot ingredient.Ingredient) error {
	if err := b.Validate(); err != nil {
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

	if i, ok := b.index[lot.Name()]; ok {
		current := b.items[i]
		merged, err := ingredient.NewStock(
			current.Name(), current.Held()+lot.Held(), current.UnitPrice())
		if err != nil {
			return err
		}
		b.items[i] = merged
		return nil
	}

	b.index[lot.Name()] = len(b.items)
	b.items = append(b.items, lot)
	return nil
}

// SetAll replaces the pool's contents wholesale.
// Entries are validated before anything is replaced; duplicate names in
// the input are merged in first-appearance order.
//
// Parameters:
//   - items: The new pool contents (each with a positive held quantity)
//
// Returns:
//   - error: Validation error; the pool is unchanged on failure
func (b *Backup) SetAll(items []ingredient.Ingredient) error {
	if err := b.Validate(); err != nil {
		return err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if item.Held() <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"items are invalid",
				fmt.Errorf("%s holds %d, expected a positive quantity", item.Name(), item.Held()),
			)
		}
	}

	b.Clear()
	for _, item := range items {
		if err := b.Add(item); err != nil {
			return err
		}
	}
	return nil
}

// Withdraw removes a quantity of the named ingredient from the pool and
// returns it as a lot priced at the pool entry's unit price. An entry
// drawn down to exactly zero is removed.
//
// Parameters:
//   - name: Ingredient name to withdraw
//   - quantity: Amount to withdraw (must be positive)
//
// Returns:
//   - ingredient.Ingredient: The withdrawn lot
//   - error: ErrInvalidQuantity if the quantity is not positive,
//     ErrIngredientNotFound if the pool has no entry,
//     ErrInsufficientBackupStock if the entry holds less than quantity
func (b *Backup) Withdraw(name string, quantity int) (ingredient.Ingredient, error) {
	if err := b.Validate(); err != nil {
		return ingredient.Ingredient{}, err
	}
	if quantity <= 0 {
		return ingredient.Ingredient{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, quantity)
	}

	i, ok := b.index[name]
	if !ok {
		return ingredient.Ingredient{}, fmt.Errorf("%w: %s", ErrIngredientNotFound, name)
	}

	current := b.items[i]
	if current.Held() < quantity {
		return ingredient.Ingredient{}, fmt.Errorf("%w: %s", ErrInsufficientBackupStock, name)
	}

	lot, err := ingredient.NewStock(name, quantity, current.UnitPrice())
	if err != nil {
		return ingredient.Ingredient{}, err
	}

	remaining := current.Held() - quantity
	if remaining == 0 {
		b.items = append(b.items[:i], b.items[i+1:]...)
		b.reindex()
		return lot, nil
	}

	reduced, err := ingredient.NewStock(name, remaining, current.UnitPrice())
	if err != nil {
		return ingredient.Ingredient{}, err
	}
	b.items[i] = reduced
	return lot, nil
}

// Quantity returns the amount of the named ingredient the pool holds.
// Ingredients with no entry report zero.
func (b *Backup) Quantity(name string) int {
	if i, ok := b.index[name]; ok {
		return b.items[i].Held()
	}
	return 0
}

// Items returns a copy of the pool's entries in first-insertion order.
// Mutating the returned slice does not affect the pool.
func (b *Backup) Items() []ingredient.Ingredient {
	items := make([]ingredient.Ingredient, len(b.items))
	copy(items, b.items)
	return items
}

// Clear removes every entry from the pool.
func (b *Backup) Clear() {
	b.items = nil
	clear(b.index)
}

// Clone returns a deep copy of the pool.
func (b *Backup) Clone() *Backup {
	clone := NewBackup()
	clone.items = make([]ingredient.Ingredient, len(b.items))
	copy(clone.items, b.items)
	for name, i := range b.index {
		clone.index[name] = i
	}
	return clone
}

// reindex rebuilds the name-to-position map after an entry removal.
func (b *Backup) reindex() {
	clear(b.index)
	for i, item := range b.items {
		b.index[item.Name()] = i
	}
}
