package commands_test

import (
	"testing"

	"bistro/internal/adapters/out/memstore"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t), lot(t, "pasta", 2), lot(t, "sauce", 1))
	seedBackup(t, store, lot(t, "pasta", 2), lot(t, "sauce", 1))

	first := seedOrder(t, store, spaghetti(t))
	second := seedOrder(t, store, spaghetti(t))
	third := seedOrder(t, store, spaghetti(t))

	h := commands.NewProcessOrdersCommandHandler(kitchenUoWFactory{store}, nil)
	result, err := h.Handle(ctx, commands.NewProcessOrdersCommand())
	require.NoError(t, err)

	// Stock covers the first ticket, the backup pool the second;
	// nothing is left for the third.
	assert.Equal(t, 2, result.Report.Fulfilled)
	assert.Equal(t, 1, result.Report.Requeued)

	require.Len(t, result.Report.Outcomes, 3)
	assert.True(t, result.Report.Outcomes[0].TicketID.IsEqual(first))
	assert.True(t, result.Report.Outcomes[0].Fulfilled)
	assert.Equal(t, "Pasta Bar", result.Report.Outcomes[0].Station)
	assert.True(t, result.Report.Outcomes[1].TicketID.IsEqual(second))
	assert.True(t, result.Report.Outcomes[1].Fulfilled)
	assert.True(t, result.Report.Outcomes[2].TicketID.IsEqual(third))
	assert.False(t, result.Report.Outcomes[2].Fulfilled)

	tickets, err := store.ViewOrders(ctx)
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.True(t, tickets[0].ID().IsEqual(third))

	assert.Equal(t, 0, backupHeld(t, store, "pasta"))
	assert.Equal(t, 0, backupHeld(t, store, "sauce"))
}

func TestProcessOrdersCommandHandler_Handle_CollectsTraceEvents(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t), lot(t, "pasta", 2), lot(t, "sauce", 1))
	seedOrder(t, store, spaghetti(t))

	h := commands.NewProcessOrdersCommandHandler(kitchenUoWFactory{store}, nil)
	result, err := h.Handle(ctx, commands.NewProcessOrdersCommand())
	require.NoError(t, err)

	lines := services.Trace(result.Events)
	require.NotEmpty(t, lines)
	assert.Equal(t, "PREPARING DISH: Spaghetti", lines[0])
	assert.Equal(t, "All dishes have been processed.", lines[len(lines)-1])
}

func TestProcessOrdersCommandHandler_Handle_ForwardsEventsToRecorder(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t), lot(t, "pasta", 2), lot(t, "sauce", 1))
	seedOrder(t, store, spaghetti(t))

	observer := services.NewCollectingRecorder()
	h := commands.NewProcessOrdersCommandHandler(kitchenUoWFactory{store}, observer)
	result, err := h.Handle(ctx, commands.NewProcessOrdersCommand())
	require.NoError(t, err)

	assert.Equal(t, result.Events, observer.Events())
}

func TestProcessOrdersCommandHandler_Handle_EmptyQueue(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t), lot(t, "pasta", 2), lot(t, "sauce", 1))

	h := commands.NewProcessOrdersCommandHandler(kitchenUoWFactory{store}, nil)
	_, err := h.Handle(ctx, commands.NewProcessOrdersCommand())
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNoPendingOrders)
}

func TestProcessOrdersCommandHandler_Handle_SecondPassDrainsAfterRestock(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedStation(t, store, "Pasta Bar", spaghetti(t))
	seedOrder(t, store, spaghetti(t))

	h := commands.NewProcessOrdersCommandHandler(kitchenUoWFactory{store}, nil)
	result, err := h.Handle(ctx, commands.NewProcessOrdersCommand())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.Requeued)

	seedBackup(t, store, lot(t, "pasta", 2), lot(t, "sauce", 1))

	result, err = h.Handle(ctx, commands.NewProcessOrdersCommand())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Report.Fulfilled)

	tickets, err := store.ViewOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, tickets)
}
