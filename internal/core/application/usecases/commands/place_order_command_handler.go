package commands

import (
	"context"

	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/recipe"
)

// PlaceOrderCommandHandler handles the business logic for queueing a new
// order ticket. The ticket receives its own copy of the recipe so that
// dietary adjustments never leak into the copy assigned at the station.
type PlaceOrderCommandHandler struct {
	uowFactory   OrdersUoWFactory
	accommodator recipe.Accommodator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires an OrdersUoWFactory for transactional queue updates and an
// Accommodator for dietary adjustments. A nil accommodator falls back to
// recipe.DefaultAccommodator.
func NewPlaceOrderCommandHandler(
	uowFactory OrdersUoWFactory,
	accommodator recipe.Accommodator,
) PlaceOrderCommandHandler {
	if accommodator == nil {
		accommodator = recipe.DefaultAccommodator{}
	}

	return PlaceOrderCommandHandler{
		uowFactory:   uowFactory,
		accommodator: accommodator,
	}
}

// Handle processes the order placement command.
//
// The recipe is looked up across registered stations in fallback order.
// Returns station.ErrRecipeNotOffered when no station has the recipe
// assigned, and order.ErrTicketAlreadyQueued when a ticket with the same
// identifier is already waiting.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	rcp, err := uow.Registry().FindRecipe(cmd.RecipeName())
	if err != nil {
		return err
	}

	ordered := rcp.Clone()
	if cmd.HasDietary() {
		if err := h.accommodator.Accommodate(ordered, cmd.Dietary()); err != nil {
			return err
		}
	}

	ticket, err := order.NewTicket(cmd.TicketID(), ordered)
	if err != nil {
		return err
	}

	if err := uow.Orders().Enqueue(ticket); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
