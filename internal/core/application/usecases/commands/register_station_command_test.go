package commands_test

import (
	"testing"

	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/ingredient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterStationCommand_ValidInput(t *testing.T) {
	stock := []ingredient.Ingredient{lot(t, "pasta", 5), lot(t, "sauce", 3)}
	cmd, err := commands.NewRegisterStationCommand("Pasta Bar", stock)
	require.NoError(t, err)
	assert.Equal(t, "Pasta Bar", cmd.Name())
	assert.Equal(t, stock, cmd.Stock())
}

func TestNewRegisterStationCommand_NilStock(t *testing.T) {
	cmd, err := commands.NewRegisterStationCommand("Pasta Bar", nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.Stock())
}

func TestNewRegisterStationCommand_CopiesStock(t *testing.T) {
	stock := []ingredient.Ingredient{lot(t, "pasta", 5)}
	cmd, err := commands.NewRegisterStationCommand("Pasta Bar", stock)
	require.NoError(t, err)

	stock[0] = lot(t, "sauce", 1)
	assert.Equal(t, "pasta", cmd.Stock()[0].Name())
}

func TestNewRegisterStationCommand_EmptyName(t *testing.T) {
	_, err := commands.NewRegisterStationCommand("", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStationNameIsRequired)
}

func TestNewRegisterStationCommand_InvalidLot(t *testing.T) {
	invalid := ingredient.Ingredient{} // zero value, should trigger validation error
	_, err := commands.NewRegisterStationCommand("Pasta Bar", []ingredient.Ingredient{invalid})
	require.Error(t, err)
}
