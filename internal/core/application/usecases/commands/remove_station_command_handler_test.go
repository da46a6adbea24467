package commands_test

import (
	"testing"

	"bistro/internal/adapters/out/memstore"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/station"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveStationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Grill", nil)
	seedStation(t, store, "Pasta Bar", nil)

	cmd, err := commands.NewRemoveStationCommand("Grill")
	require.NoError(t, err)

	h := commands.NewRemoveStationCommandHandler(stationsUoWFactory{store})
	require.NoError(t, h.Handle(ctx, cmd))

	stations, err := store.ViewStations(ctx)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "Pasta Bar", stations[0].Name())
}

func TestRemoveStationCommandHandler_Handle_UnknownStation(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Grill", nil)

	cmd, err := commands.NewRemoveStationCommand("Fry Station")
	require.NoError(t, err)

	h := commands.NewRemoveStationCommandHandler(stationsUoWFactory{store})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, station.ErrStationNotFound)

	// The failed removal must not disturb committed state.
	stations, err := store.ViewStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func TestRemoveStationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RemoveStationCommand{} // not constructed properly

	h := commands.NewRemoveStationCommandHandler(stationsUoWFactory{memstore.NewStore()})
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRemoveStationCommandIsNotConstructed)
}
