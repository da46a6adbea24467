package cmd

import (
	"context"
	"fmt"

	"bistro/internal/config"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/recipe"
)

// SeedKitchen replays a kitchen seed file through the regular command
// handlers: stations are registered in file order, recipes assigned, the
// backup pool filled, and initial orders queued. Seeded state therefore
// obeys the same rules as state created over the API.
func (c *CompositionRoot) SeedKitchen(ctx context.Context, kitchen *config.Kitchen) error {
	if err := c.seedStations(ctx, kitchen.Stations); err != nil {
		return err
	}
	if err := c.seedRecipes(ctx, kitchen.Recipes); err != nil {
		return err
	}
	if err := c.seedBackup(ctx, kitchen.Backup); err != nil {
		return err
	}
	return c.seedOrders(ctx, kitchen.Orders)
}

func (c *CompositionRoot) seedStations(ctx context.Context, stations []config.Station) error {
	handler := c.CreateRegisterStationCommandHandler()

	for _, st := range stations {
		stock, err := stockFromLots(st.Stock)
		if err != nil {
			return fmt.Errorf("station %q stock: %w", st.Name, err)
		}

		cmd, err := commands.NewRegisterStationCommand(st.Name, stock)
		if err != nil {
			return fmt.Errorf("station %q: %w", st.Name, err)
		}

		if err := handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("registering station %q: %w", st.Name, err)
		}
	}

	return nil
}

func (c *CompositionRoot) seedRecipes(ctx context.Context, recipes []config.Recipe) error {
	handler := c.CreateAssignRecipeCommandHandler()

	for _, entry := range recipes {
		requirements := make([]ingredient.Ingredient, len(entry.Ingredients))
		for i, line := range entry.Ingredients {
			requirement, err := ingredient.NewRequirement(line.Name, line.Quantity, line.UnitPrice)
			if err != nil {
				return fmt.Errorf("recipe %q ingredient %q: %w", entry.Name, line.Name, err)
			}
			requirements[i] = requirement
		}

		cuisine, err := recipe.ClassificationFromString(entry.Cuisine)
		if err != nil {
			return fmt.Errorf("recipe %q: %w", entry.Name, err)
		}

		dish, err := recipe.NewRecipe(entry.Name, requirements, entry.PrepMinutes, entry.Price, cuisine)
		if err != nil {
			return fmt.Errorf("recipe %q: %w", entry.Name, err)
		}

		for _, stationName := range entry.Stations {
			// Each station gets its own copy of the recipe.
			cmd, err := commands.NewAssignRecipeCommand(stationName, dish.Clone())
			if err != nil {
				return fmt.Errorf("recipe %q: %w", entry.Name, err)
			}

			if err := handler.Handle(ctx, cmd); err != nil {
				return fmt.Errorf("assigning recipe %q to %q: %w", entry.Name, stationName, err)
			}
		}
	}

	return nil
}

func (c *CompositionRoot) seedBackup(ctx context.Context, lots []config.Lot) error {
	if len(lots) == 0 {
		return nil
	}

	stock, err := stockFromLots(lots)
	if err != nil {
		return fmt.Errorf("backup stock: %w", err)
	}

	cmd, err := commands.NewReplaceBackupCommand(stock)
	if err != nil {
		return fmt.Errorf("backup stock: %w", err)
	}

	handler := c.CreateReplaceBackupCommandHandler()
	if err := handler.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("filling backup pool: %w", err)
	}

	return nil
}

func (c *CompositionRoot) seedOrders(ctx context.Context, orders []config.Order) error {
	handler := c.CreatePlaceOrderCommandHandler()

	for _, entry := range orders {
		ticketID := kernel.NewUUID()

		var cmd commands.PlaceOrderCommand
		var err error
		if len(entry.Exclusions) > 0 {
			cmd, err = commands.NewPlaceOrderCommandWithDietary(
				ticketID,
				entry.Recipe,
				recipe.DietaryRequest{Exclusions: entry.Exclusions},
			)
		} else {
			cmd, err = commands.NewPlaceOrderCommand(ticketID, entry.Recipe)
		}
		if err != nil {
			return fmt.Errorf("order for %q: %w", entry.Recipe, err)
		}

		if err := handler.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("queueing order for %q: %w", entry.Recipe, err)
		}
	}

	return nil
}

func stockFromLots(lots []config.Lot) ([]ingredient.Ingredient, error) {
	if len(lots) == 0 {
		return nil, nil
	}

	stock := make([]ingredient.Ingredient, len(lots))
	for i, lot := range lots {
		item, err := ingredient.NewStock(lot.Name, lot.Quantity, lot.UnitPrice)
		if err != nil {
			return nil, fmt.Errorf("lot %q: %w", lot.Name, err)
		}
		stock[i] = item
	}

	return stock, nil
}
