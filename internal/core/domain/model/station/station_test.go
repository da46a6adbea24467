package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/core/domain/model/station"
)

// newTestStation creates a valid station for testing.
func newTestStation(t *testing.T, name string) *station.Station {
	t.Helper()
	st, err := station.NewStation(name)
	require.NoError(t, err)
	return st
}

// newBurgerRecipe creates a recipe requiring 2 buns and 1 patty.
func newBurgerRecipe(t *testing.T) *recipe.Recipe {
	t.Helper()
	bun, err := ingredient.NewRequirement("bun", 2, 0.50)
	require.NoError(t, err)
	patty, err := ingredient.NewRequirement("patty", 1, 2.00)
	require.NoError(t, err)
	rcp, err := recipe.NewRecipe("Classic Burger", []ingredient.Ingredient{bun, patty}, 15, 8.99, recipe.American)
	require.NoError(t, err)
	return rcp
}

func TestNewStation(t *testing.T) {
	t.Run("should create a valid station", func(t *testing.T) {
		st, err := station.NewStation("Grill")

		require.NoError(t, err)
		assert.Equal(t, "Grill", st.Name())
		assert.Empty(t, st.Recipes())
		assert.Empty(t, st.StockItems())
		assert.NoError(t, st.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := station.NewStation("")

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrNameIsRequired)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var st station.Station

		err := st.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrStationIsNotConstructed)
	})
}

func TestStation_AssignRecipe(t *testing.T) {
	t.Run("should assign a recipe", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		err := st.AssignRecipe(newBurgerRecipe(t))

		require.NoError(t, err)
		assert.True(t, st.HasRecipe("Classic Burger"))
		assert.Len(t, st.Recipes(), 1)
	})

	t.Run("re-assigning the same name is a no-op that keeps the original", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		original := newBurgerRecipe(t)
		require.NoError(t, st.AssignRecipe(original))

		cheese, err := ingredient.NewRequirement("cheese", 1, 1.25)
		require.NoError(t, err)
		variant, err := recipe.NewRecipe("Classic Burger", []ingredient.Ingredient{cheese}, 10, 9.99, recipe.American)
		require.NoError(t, err)

		require.NoError(t, st.AssignRecipe(variant))

		assert.Len(t, st.Recipes(), 1)
		assigned, err := st.AssignedRecipe("Classic Burger")
		require.NoError(t, err)
		assert.Equal(t, "bun", assigned.Requirements()[0].Name())
	})

	t.Run("should reject nil recipe", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		require.Error(t, st.AssignRecipe(nil))
	})

	t.Run("should reject non-constructed recipe", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		var rcp recipe.Recipe

		err := st.AssignRecipe(&rcp)

		require.Error(t, err)
		assert.ErrorIs(t, err, recipe.ErrRecipeIsNotConstructed)
	})
}

func TestStation_AssignedRecipe(t *testing.T) {
	t.Run("should return the assigned definition", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))

		rcp, err := st.AssignedRecipe("Classic Burger")

		require.NoError(t, err)
		assert.Equal(t, "Classic Burger", rcp.Name())
	})

	t.Run("should report unassigned recipes", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		_, err := st.AssignedRecipe("Pad Thai")

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrRecipeNotAssigned)
	})
}

func TestStation_CanComplete(t *testing.T) {
	t.Run("should be false when the recipe is not assigned", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		assert.False(t, st.CanComplete("Classic Burger"))
	})

	t.Run("should be false when stock is insufficient", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 1, 0.50)))

		assert.False(t, st.CanComplete("Classic Burger"))
	})

	t.Run("should be true when every requirement is held", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 2, 0.50)))
		require.NoError(t, st.Replenish(newTestLot(t, "patty", 1, 2.00)))

		assert.True(t, st.CanComplete("Classic Burger"))
	})
}

func TestStation_Prepare(t *testing.T) {
	t.Run("should deduct every required quantity", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 5, 0.50)))
		require.NoError(t, st.Replenish(newTestLot(t, "patty", 3, 2.00)))

		err := st.Prepare("Classic Burger")

		require.NoError(t, err)
		assert.Equal(t, 3, st.Held("bun"))
		assert.Equal(t, 2, st.Held("patty"))
	})

	t.Run("should fail without deducting when any ingredient is short", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 5, 0.50)))
		// no patty at all

		err := st.Prepare("Classic Burger")

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrInsufficientStock)
		assert.Equal(t, 5, st.Held("bun"), "no partial deduction")
	})

	t.Run("should fail when the recipe is not assigned", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		err := st.Prepare("Classic Burger")

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrRecipeNotAssigned)
	})
}

func TestStation_Shortfalls(t *testing.T) {
	t.Run("should list missing quantities in requirement order", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 1, 0.50)))

		shortfalls, err := st.Shortfalls("Classic Burger")

		require.NoError(t, err)
		require.Len(t, shortfalls, 2)
		assert.Equal(t, station.Shortfall{Name: "bun", Quantity: 1}, shortfalls[0])
		assert.Equal(t, station.Shortfall{Name: "patty", Quantity: 1}, shortfalls[1])
	})

	t.Run("should omit ingredients held in sufficient quantity", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 10, 0.50)))

		shortfalls, err := st.Shortfalls("Classic Burger")

		require.NoError(t, err)
		require.Len(t, shortfalls, 1)
		assert.Equal(t, "patty", shortfalls[0].Name)
	})

	t.Run("should be empty when the recipe can be completed", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 2, 0.50)))
		require.NoError(t, st.Replenish(newTestLot(t, "patty", 1, 2.00)))

		shortfalls, err := st.Shortfalls("Classic Burger")

		require.NoError(t, err)
		assert.Empty(t, shortfalls)
	})

	t.Run("should fail for an unassigned recipe", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		_, err := st.Shortfalls("Classic Burger")

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrRecipeNotAssigned)
	})
}

func TestStation_PrepareRecipe(t *testing.T) {
	t.Run("should honor the caller's requirements over the assigned copy", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 2, 0.50)))
		// No patty held. A ticket whose copy dropped the patty must still prepare.
		adjusted := newBurgerRecipe(t)
		require.True(t, adjusted.RemoveRequirement("patty"))

		assert.True(t, st.CanCompleteRecipe(adjusted))
		require.NoError(t, st.PrepareRecipe(adjusted))
		assert.Equal(t, 0, st.Held("bun"))
	})

	t.Run("should require the recipe name to be assigned", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		err := st.PrepareRecipe(newBurgerRecipe(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrRecipeNotAssigned)
	})

	t.Run("should reject nil recipe", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		require.Error(t, st.PrepareRecipe(nil))
	})
}

func TestStation_ShortfallsFor(t *testing.T) {
	t.Run("should compute shortfalls against the caller's copy", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		adjusted := newBurgerRecipe(t)
		require.True(t, adjusted.RemoveRequirement("patty"))

		shortfalls, err := st.ShortfallsFor(adjusted)

		require.NoError(t, err)
		require.Len(t, shortfalls, 1)
		assert.Equal(t, station.Shortfall{Name: "bun", Quantity: 2}, shortfalls[0])
	})

	t.Run("should fail when the recipe name is not assigned", func(t *testing.T) {
		st := newTestStation(t, "Grill")

		_, err := st.ShortfallsFor(newBurgerRecipe(t))

		require.Error(t, err)
		assert.ErrorIs(t, err, station.ErrRecipeNotAssigned)
	})
}

func TestStation_Clone(t *testing.T) {
	t.Run("should deep copy stock and recipes", func(t *testing.T) {
		st := newTestStation(t, "Grill")
		require.NoError(t, st.AssignRecipe(newBurgerRecipe(t)))
		require.NoError(t, st.Replenish(newTestLot(t, "bun", 5, 0.50)))
		require.NoError(t, st.Replenish(newTestLot(t, "patty", 3, 2.00)))

		clone := st.Clone()

		require.NoError(t, clone.Validate())
		assert.True(t, st.IsEqual(clone))
		assert.Equal(t, st.StockItems(), clone.StockItems())

		// Preparing on the clone must not affect the original.
		require.NoError(t, clone.Prepare("Classic Burger"))
		assert.Equal(t, 5, st.Held("bun"))
		assert.Equal(t, 3, clone.Held("bun"))
	})
}
