package commands_test

import (
	"testing"

	"bistro/internal/adapters/out/memstore"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/ingredient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceBackupCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedBackup(t, store, lot(t, "pasta", 9), lot(t, "sauce", 4))

	cmd, err := commands.NewReplaceBackupCommand([]ingredient.Ingredient{lot(t, "bun", 7)})
	require.NoError(t, err)

	h := commands.NewReplaceBackupCommandHandler(backupUoWFactory{store})
	require.NoError(t, h.Handle(ctx, cmd))

	items, err := store.ViewBackup(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "bun", items[0].Name())
	assert.Equal(t, 7, items[0].Held())
}

func TestReplaceBackupCommandHandler_Handle_EmptyLotsClearPool(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewStore()
	seedBackup(t, store, lot(t, "pasta", 9))

	cmd, err := commands.NewReplaceBackupCommand(nil)
	require.NoError(t, err)

	h := commands.NewReplaceBackupCommandHandler(backupUoWFactory{store})
	require.NoError(t, h.Handle(ctx, cmd))

	items, err := store.ViewBackup(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
