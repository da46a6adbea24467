// Package queries contains read operations for retrieving kitchen state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/core/domain/model/station"
)

// StationView represents a kitchen station in the read model.
// Position is the station's 1-based place in the fallback order; the
// station at position 1 is tried first during fulfillment.
type StationView struct {
	Name     string
	Position int
	Recipes  []RecipeView
	Stock    []IngredientView
}

// RecipeView represents a recipe assigned at a station in the read model.
type RecipeView struct {
	Name         string
	Requirements []RequirementView
	PrepMinutes  int
	Price        float64
	Cuisine      string
}

// RequirementView is one ingredient line of a recipe.
type RequirementView struct {
	Name     string
	Quantity int
}

// IngredientView is one stock line of a station or the backup pool.
type IngredientView struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

// TicketView represents a queued order ticket in the read model.
// Position is the ticket's 1-based place in the queue; the ticket at
// position 1 is prepared next.
type TicketView struct {
	ID       kernel.UUID
	Recipe   string
	Status   string
	Position int
}

func newStationView(st *station.Station, position int) StationView {
	recipes := st.Recipes()
	recipeViews := make([]RecipeView, 0, len(recipes))
	for _, rcp := range recipes {
		recipeViews = append(recipeViews, newRecipeView(rcp))
	}

	stock := st.StockItems()
	stockViews := make([]IngredientView, 0, len(stock))
	for _, item := range stock {
		stockViews = append(stockViews, newIngredientView(item))
	}

	return StationView{
		Name:     st.Name(),
		Position: position,
		Recipes:  recipeViews,
		Stock:    stockViews,
	}
}

func newRecipeView(rcp *recipe.Recipe) RecipeView {
	requirements := rcp.Requirements()
	requirementViews := make([]RequirementView, 0, len(requirements))
	for _, req := range requirements {
		requirementViews = append(requirementViews, RequirementView{
			Name:     req.Name(),
			Quantity: req.Required(),
		})
	}

	return RecipeView{
		Name:         rcp.Name(),
		Requirements: requirementViews,
		PrepMinutes:  rcp.PrepMinutes(),
		Price:        rcp.Price(),
		Cuisine:      rcp.Cuisine().String(),
	}
}

func newIngredientView(item ingredient.Ingredient) IngredientView {
	return IngredientView{
		Name:      item.Name(),
		Quantity:  item.Held(),
		UnitPrice: item.UnitPrice(),
	}
}

func newTicketView(ticket *order.Ticket, position int) TicketView {
	return TicketView{
		ID:       ticket.ID(),
		Recipe:   ticket.RecipeName(),
		Status:   ticket.Status().String(),
		Position: position,
	}
}
