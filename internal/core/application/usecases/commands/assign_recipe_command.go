package commands

import (
	"errors"

	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

var ErrAssignRecipeCommandIsNotConstructed = errors.New(
	"AssignRecipeCommand must be created via NewAssignRecipeCommand constructor",
)

// AssignRecipeCommand represents a request to put a recipe on a station's
// menu. The station keeps its own definition of the dish; assigning a name
// the station already offers is a no-op that keeps the original.
//
// Example:
//
//	burger, _ := recipe.NewRecipe("Classic Burger", reqs, 15, 8.99, recipe.American)
//	cmd, err := NewAssignRecipeCommand("Grill", burger)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment: %w", err)
//	}
//
//	handler := NewAssignRecipeCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to assign recipe: %w", err)
//	}
type AssignRecipeCommand struct { //nolint:recvcheck //using for validation
	stationName string
	recipe      *recipe.Recipe

	guard guard.ConstructorGuard
}

// NewAssignRecipeCommand creates a command to assign the recipe to the
// named station. Validates that the station name is present and the recipe
// is properly constructed.
func NewAssignRecipeCommand(stationName string, rcp *recipe.Recipe) (AssignRecipeCommand, error) {
	assignCommand := AssignRecipeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		assignCommand.setStationName(stationName),
		assignCommand.setRecipe(rcp),
	); err != nil {
		return AssignRecipeCommand{}, err
	}

	return assignCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignRecipeCommandIsNotConstructed if validation fails.
func (c AssignRecipeCommand) Validate() error {
	return c.guard.Validate(ErrAssignRecipeCommandIsNotConstructed)
}

// StationName returns the name of the station receiving the recipe.
func (c AssignRecipeCommand) StationName() string {
	return c.stationName
}

// Recipe returns the recipe to assign.
func (c AssignRecipeCommand) Recipe() *recipe.Recipe {
	return c.recipe
}

func (c *AssignRecipeCommand) setStationName(stationName string) error {
	if stationName == "" {
		return ErrStationNameIsRequired
	}

	c.stationName = stationName
	return nil
}

func (c *AssignRecipeCommand) setRecipe(rcp *recipe.Recipe) error {
	if rcp == nil {
		return errs.NewValueIsRequiredError("recipe")
	}
	if err := rcp.Validate(); err != nil {
		return err
	}

	c.recipe = rcp
	return nil
}
