package commands_test

import (
	"testing"

	"bistro/internal/adapters/out/memstore"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t))

	id := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(id, "Spaghetti")
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(ordersUoWFactory{store}, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	tickets, err := store.ViewOrders(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.True(t, tickets[0].ID().IsEqual(id))
	assert.Equal(t, "Spaghetti", tickets[0].RecipeName())
	assert.Equal(t, order.Pending, tickets[0].Status())
}

func TestPlaceOrderCommandHandler_Handle_DietaryAdjustsOnlyTheTicket(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t))

	dietary := recipe.DietaryRequest{Exclusions: []string{"sauce"}}
	cmd, err := commands.NewPlaceOrderCommandWithDietary(kernel.NewUUID(), "Spaghetti", dietary)
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(ordersUoWFactory{store}, recipe.DefaultAccommodator{})
	require.NoError(t, h.Handle(ctx, cmd))

	tickets, err := store.ViewOrders(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)

	names := make([]string, 0, 2)
	for _, req := range tickets[0].Recipe().Requirements() {
		names = append(names, req.Name())
	}
	assert.Equal(t, []string{"pasta"}, names)

	// The copy assigned at the station keeps its full requirement list.
	st, err := store.ViewStation(ctx, "Pasta Bar")
	require.NoError(t, err)
	assigned, err := st.AssignedRecipe("Spaghetti")
	require.NoError(t, err)
	assert.Len(t, assigned.Requirements(), 2)
}

func TestPlaceOrderCommandHandler_Handle_UnknownRecipe(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", nil)

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "Spaghetti")
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(ordersUoWFactory{store}, nil)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, station.ErrRecipeNotOffered)

	tickets, err := store.ViewOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}

func TestPlaceOrderCommandHandler_Handle_DuplicateTicket(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t))

	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), "Spaghetti")
	require.NoError(t, err)

	h := commands.NewPlaceOrderCommandHandler(ordersUoWFactory{store}, nil)
	require.NoError(t, h.Handle(ctx, cmd))

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrTicketAlreadyQueued)
}
