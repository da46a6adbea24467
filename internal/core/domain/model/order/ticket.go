package order

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/pkg/errs"
)

var (
	// ErrTicketIsNotConstructed is returned when a Ticket instance was not created
	// through the NewTicket factory method. This ensures all tickets are properly
	// validated.
	ErrTicketIsNotConstructed = errors.New("Ticket must be created via NewTicket constructor")
)

// Ticket represents a guest order in the system. It is the aggregate root that
// manages the order lifecycle from placement through preparation.
//
// Ticket follows these invariants:
//   - Must have a valid unique identifier
//   - Must carry a valid recipe (the guest-facing card, dietary adjustments
//     already applied)
//   - Status transitions follow defined business rules
//   - Station attribution is recorded exactly once, on fulfillment
//   - Can only be created through NewTicket constructor
//
// The Ticket struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Ticket struct {
	// id is the unique identifier for the ticket
	id kernel.UUID

	// recipe is the ordered dish; the ticket owns this copy
	recipe *recipe.Recipe

	// status represents the current state in the ticket lifecycle
	status Status

	// preparedBy is the name of the station that prepared the dish
	// (nil while pending)
	preparedBy *string

	// isConstructed ensures the ticket was created via NewTicket
	isConstructed bool
}

// NewTicket creates a new Ticket instance with validation. This is the only way
// to create a valid Ticket, ensuring all business invariants are maintained.
//
// The ticket takes ownership of the recipe: callers hand over their copy
// (typically a clone of a station's assigned definition) and must not mutate
// it afterwards.
//
// Parameters:
//   - id: Unique identifier for the ticket (must be valid UUID)
//   - rcp: The ordered recipe (must be properly constructed)
//
// Returns:
//   - *Ticket: The created ticket if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	ticketID := kernel.NewUUID()
//	ticket, err := NewTicket(ticketID, card)
//	if err != nil {
//	    // Handle validation error
//	}
//
// The constructor validates all inputs and ensures the ticket is created
// with Pending status and no station attribution.
func NewTicket(id kernel.UUID, rcp *recipe.Recipe) (*Ticket, error) {
	ticket := &Ticket{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		ticket.setID(id),
		ticket.setRecipe(rcp),
	); err != nil {
		return nil, err
	}

	return ticket, nil
}

// Validate ensures the Ticket instance was properly constructed through NewTicket.
// This prevents bypassing validation by directly instantiating the struct.
//
// Returns:
//   - nil if the ticket is valid
//   - ErrTicketIsNotConstructed if the ticket was not created via NewTicket
func (t *Ticket) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTicketIsNotConstructed
	}

	return nil
}

// IsEqual compares two tickets by their unique identifiers.
// Tickets are considered equal if they have the same ID.
//
// Parameters:
//   - other: The ticket to compare with
//
// Returns:
//   - true if both tickets have the same ID
//   - false if other is nil or IDs differ
func (t *Ticket) IsEqual(other *Ticket) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the ticket's unique identifier.
func (t *Ticket) ID() kernel.UUID {
	return t.id
}

// Recipe returns the ordered recipe. The ticket owns the returned value;
// callers must treat it as read-only.
func (t *Ticket) Recipe() *recipe.Recipe {
	return t.recipe
}

// RecipeName returns the name of the ordered recipe.
func (t *Ticket) RecipeName() string {
	return t.recipe.Name()
}

// Status returns the current status of the ticket.
func (t *Ticket) Status() Status {
	return t.status
}

// PreparedBy returns the name of the station that prepared the dish.
// Returns nil while the ticket is pending.
func (t *Ticket) PreparedBy() *string {
	return t.preparedBy
}

// Fulfill marks the ticket as prepared by the named station and updates the
// status to Fulfilled.
//
// This method enforces the following business rules:
//   - The station name must be non-empty
//   - The ticket must be in Pending status
//   - Fulfilled is a final state with no further transitions
//
// Parameters:
//   - stationName: The name of the station that prepared the dish
//
// Returns:
//   - nil on successful fulfillment
//   - error if the station name is empty or the transition is not allowed
//
// Example:
//
//	err := ticket.Fulfill("Grill")
//	if err != nil {
//	    // Ticket was not in Pending status
//	}
//
// After successful fulfillment, the ticket's status becomes Fulfilled and
// PreparedBy() returns the station name.
func (t *Ticket) Fulfill(stationName string) error {
	if stationName == "" {
		return errs.NewValueIsRequiredError("stationName")
	}

	newStatus, err := t.status.Fulfill()
	if err != nil {
		return err
	}

	t.status = newStatus
	t.preparedBy = &stationName
	return nil
}

// Clone returns a deep copy of the ticket, including its own copy of
// the recipe.
func (t *Ticket) Clone() *Ticket {
	clone := &Ticket{
		id:            t.id,
		recipe:        t.recipe.Clone(),
		status:        t.status,
		isConstructed: t.isConstructed,
	}
	if t.preparedBy != nil {
		preparedBy := *t.preparedBy
		clone.preparedBy = &preparedBy
	}
	return clone
}

// setID validates and sets the ticket's unique identifier.
// This is a private method used only during construction.
func (t *Ticket) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

// setRecipe validates and sets the ordered recipe.
// This is a private method used only during construction.
func (t *Ticket) setRecipe(rcp *recipe.Recipe) error {
	if rcp == nil {
		return errs.NewValueIsRequiredError("recipe")
	}
	if err := rcp.Validate(); err != nil {
		return err
	}
	t.recipe = rcp
	return nil
}
