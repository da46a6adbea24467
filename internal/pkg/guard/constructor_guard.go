package guard

import "errors"

// ErrDefaultConstructorGuard is what ConstructorGuard.Validate returns when the
// caller passes a nil validation error, so a failed check always carries a
// message naming the fix.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects domain objects that were created as bare zero
// values instead of going through their constructor. Aggregates and value
// objects embed one; the constructor arms it, and validation fails on any
// instance where it was never armed.
//
// That distinction matters because constructors are where invariants get
// checked. A struct literal skips them, and the guard is how that skip
// surfaces as an error instead of as corrupt state later.
//
// Example usage:
//
//	var ErrIngredientNotConstructed = errors.New("Ingredient must be created via NewIngredient")
//
//	type Ingredient struct {
//	    name     string
//	    quantity int
//	    guard    ConstructorGuard
//	}
//
//	func NewIngredient(name string, quantity int) (Ingredient, error) {
//	    if name == "" {
//	        return Ingredient{}, errors.New("name is required")
//	    }
//	    if quantity < 0 {
//	        return Ingredient{}, errors.New("quantity cannot be negative")
//	    }
//	    return Ingredient{
//	        name:     name,
//	        quantity: quantity,
//	        guard:    NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (i Ingredient) Validate() error {
//	    return i.guard.Validate(ErrIngredientNotConstructed)
//	}
//
// The guard is a single boolean, so embedding it costs nothing measurable.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns an armed guard. Call it only from the owning
// object's constructor; everywhere else the zero value is the point.
//
// Example:
//
//	func NewTicket(id UUID, recipe *Recipe) Ticket {
//	    return Ticket{
//	        id:     id,
//	        recipe: recipe,
//	        guard:  NewConstructorGuard(),
//	    }
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was armed by a constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
//
// Domain objects call this first in their own Validate method:
//
//	var ErrStationNotConstructed = errors.New("Station must be created via NewStation")
//
//	func (s *Station) Validate() error {
//	    if err := s.guard.Validate(ErrStationNotConstructed); err != nil {
//	        return err
//	    }
//	    // Additional validation logic...
//	    return nil
//	}
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
