package commands

import (
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrRecipeNameIsRequired = errors.New("recipe name is required")
)

// PlaceOrderCommand represents a request to queue a new order ticket for a
// named recipe. The recipe must be assigned at one of the registered
// stations when the command is handled, otherwise the order is rejected.
//
// Example:
//
//	ticketID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(ticketID, "Spaghetti")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, recipe.DefaultAccommodator{})
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Ticket %s queued for preparation", ticketID)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	ticketID   kernel.UUID
	recipeName string
	dietary    recipe.DietaryRequest
	hasDietary bool

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order as the menu
// describes it, with no dietary adjustments.
// Validates that the ticket ID is valid and the recipe name is not empty.
func NewPlaceOrderCommand(ticketID kernel.UUID, recipeName string) (PlaceOrderCommand, error) {
	orderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setTicketID(ticketID),
		orderCommand.setRecipeName(recipeName),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return orderCommand, nil
}

// NewPlaceOrderCommandWithDietary creates a command to place an order with
// dietary adjustments. The adjustments apply only to this order's ticket;
// the recipe assigned at the station is left untouched.
func NewPlaceOrderCommandWithDietary(
	ticketID kernel.UUID,
	recipeName string,
	dietary recipe.DietaryRequest,
) (PlaceOrderCommand, error) {
	orderCommand, err := NewPlaceOrderCommand(ticketID, recipeName)
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	orderCommand.dietary = dietary
	orderCommand.hasDietary = true

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// TicketID returns the unique identifier for the order ticket.
func (c PlaceOrderCommand) TicketID() kernel.UUID {
	return c.ticketID
}

// RecipeName returns the name of the recipe the guest ordered.
func (c PlaceOrderCommand) RecipeName() string {
	return c.recipeName
}

// Dietary returns the requested dietary adjustments.
// Meaningful only when HasDietary reports true.
func (c PlaceOrderCommand) Dietary() recipe.DietaryRequest {
	return c.dietary
}

// HasDietary reports whether the guest asked for dietary adjustments.
func (c PlaceOrderCommand) HasDietary() bool {
	return c.hasDietary
}

func (c *PlaceOrderCommand) setTicketID(ticketID kernel.UUID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}

	c.ticketID = ticketID
	return nil
}

func (c *PlaceOrderCommand) setRecipeName(recipeName string) error {
	if recipeName == "" {
		return ErrRecipeNameIsRequired
	}

	c.recipeName = recipeName
	return nil
}
