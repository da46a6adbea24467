package commands_test

import (
	"testing"

	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/ingredient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReplaceBackupCommand_ValidInput(t *testing.T) {
	lots := []ingredient.Ingredient{lot(t, "pasta", 8), lot(t, "sauce", 4)}
	cmd, err := commands.NewReplaceBackupCommand(lots)
	require.NoError(t, err)
	assert.Equal(t, lots, cmd.Lots())
}

func TestNewReplaceBackupCommand_EmptyLots(t *testing.T) {
	cmd, err := commands.NewReplaceBackupCommand(nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Lots())
}

func TestNewReplaceBackupCommand_CopiesLots(t *testing.T) {
	lots := []ingredient.Ingredient{lot(t, "pasta", 8)}
	cmd, err := commands.NewReplaceBackupCommand(lots)
	require.NoError(t, err)

	lots[0] = lot(t, "sauce", 1)
	assert.Equal(t, "pasta", cmd.Lots()[0].Name())
}

func TestNewReplaceBackupCommand_InvalidLot(t *testing.T) {
	invalid := ingredient.Ingredient{} // zero value, should trigger validation error
	_, err := commands.NewReplaceBackupCommand([]ingredient.Ingredient{invalid})
	require.Error(t, err)
	assert.ErrorIs(t, err, ingredient.ErrIngredientIsNotConstructed)
}
