package commands_test

import (
	"testing"

	"bistro/internal/adapters/out/memstore"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssignRecipeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", nil)

	cmd, err := commands.NewAssignRecipeCommand("Pasta Bar", spaghetti(t))
	require.NoError(t, err)

	h := commands.NewAssignRecipeCommandHandler(stationsUoWFactory{store})
	require.NoError(t, h.Handle(ctx, cmd))

	st, err := store.ViewStation(ctx, "Pasta Bar")
	require.NoError(t, err)
	assert.True(t, st.HasRecipe("Spaghetti"))
}

func TestAssignRecipeCommandHandler_Handle_AssignTwiceKeepsOneCopy(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t))

	cmd, err := commands.NewAssignRecipeCommand("Pasta Bar", spaghetti(t))
	require.NoError(t, err)

	h := commands.NewAssignRecipeCommandHandler(stationsUoWFactory{store})
	require.NoError(t, h.Handle(ctx, cmd))

	st, err := store.ViewStation(ctx, "Pasta Bar")
	require.NoError(t, err)
	assert.Len(t, st.Recipes(), 1)
}

func TestAssignRecipeCommandHandler_Handle_UnknownStation(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()

	cmd, err := commands.NewAssignRecipeCommand("Pasta Bar", spaghetti(t))
	require.NoError(t, err)

	h := commands.NewAssignRecipeCommandHandler(stationsUoWFactory{store})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, station.ErrStationNotFound)
}
