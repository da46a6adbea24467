package queries_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"bistro/internal/adapters/out/memstore"
	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/core/domain/model/station"
)

// lot creates a stock lot for stations and the backup pool.
func lot(t *testing.T, name string, quantity int) ingredient.Ingredient {
	t.Helper()
	item, err := ingredient.NewStock(name, quantity, 1.00)
	require.NoError(t, err)
	return item
}

// requirement creates a recipe requirement line.
func requirement(t *testing.T, name string, quantity int) ingredient.Ingredient {
	t.Helper()
	req, err := ingredient.NewRequirement(name, quantity, 1.00)
	require.NoError(t, err)
	return req
}

// spaghetti creates a recipe requiring 2 pasta and 1 sauce.
func spaghetti(t *testing.T) *recipe.Recipe {
	t.Helper()
	rcp, err := recipe.NewRecipe(
		"Spaghetti",
		[]ingredient.Ingredient{requirement(t, "pasta", 2), requirement(t, "sauce", 1)},
		20, 12.50, recipe.Italian,
	)
	require.NoError(t, err)
	return rcp
}

// seedKitchen commits the given mutation to the store's state.
func seedKitchen(t *testing.T, store *memstore.Store, mutate func(uow *memstore.UnitOfWork)) {
	t.Helper()
	uow := memstore.NewUnitOfWork(store)
	require.NoError(t, uow.Begin(t.Context()))
	mutate(uow)
	require.NoError(t, uow.Commit(t.Context()))
}

// seedStation registers a station, assigns the recipe when given, and
// deposits the given stock lots.
func seedStation(t *testing.T, store *memstore.Store, name string, rcp *recipe.Recipe, lots ...ingredient.Ingredient) {
	t.Helper()
	seedKitchen(t, store, func(uow *memstore.UnitOfWork) {
		st, err := station.NewStation(name)
		require.NoError(t, err)
		if rcp != nil {
			require.NoError(t, st.AssignRecipe(rcp))
		}
		for _, l := range lots {
			require.NoError(t, st.Replenish(l))
		}
		require.NoError(t, uow.Registry().Add(st))
	})
}

// seedBackup deposits the given lots into the backup pool.
func seedBackup(t *testing.T, store *memstore.Store, lots ...ingredient.Ingredient) {
	t.Helper()
	seedKitchen(t, store, func(uow *memstore.UnitOfWork) {
		for _, l := range lots {
			require.NoError(t, uow.Backup().Add(l))
		}
	})
}

// seedOrder queues a pending ticket for the recipe and returns its ID.
func seedOrder(t *testing.T, store *memstore.Store, rcp *recipe.Recipe) kernel.UUID {
	t.Helper()
	ticket, err := order.NewTicket(kernel.NewUUID(), rcp)
	require.NoError(t, err)
	seedKitchen(t, store, func(uow *memstore.UnitOfWork) {
		require.NoError(t, uow.Orders().Enqueue(ticket))
	})
	return ticket.ID()
}
