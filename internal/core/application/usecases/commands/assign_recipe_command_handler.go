package commands

import (
	"context"
)

// AssignRecipeCommandHandler handles the business logic for putting a
// recipe on a station's menu.
type AssignRecipeCommandHandler struct {
	uowFactory StationsUoWFactory
}

// NewAssignRecipeCommandHandler creates a handler for recipe assignment.
// Requires a StationsUoWFactory for transactional registry updates.
func NewAssignRecipeCommandHandler(uowFactory StationsUoWFactory) AssignRecipeCommandHandler {
	return AssignRecipeCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the recipe assignment command.
// Returns station.ErrStationNotFound when no such station is registered.
func (h AssignRecipeCommandHandler) Handle(ctx context.Context, cmd AssignRecipeCommand) error {
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

	if err := uow.Registry().AssignRecipe(cmd.StationName(), cmd.Recipe()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
