package commands_test

import (
	"testing"

	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/domain/model/ingredient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRestockStationCommand_ValidInput(t *testing.T) {
	deposit := lot(t, "pasta", 10)
	cmd, err := commands.NewRestockStationCommand("Pasta Bar", deposit)
	require.NoError(t, err)
	assert.Equal(t, "Pasta Bar", cmd.StationName())
	assert.Equal(t, deposit, cmd.Lot())
}

func TestNewRestockStationCommand_EmptyStationName(t *testing.T) {
	_, err := commands.NewRestockStationCommand("", lot(t, "pasta", 10))
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStationNameIsRequired)
}

func TestNewRestockStationCommand_InvalidLot(t *testing.T) {
	invalid := ingredient.Ingredient{} // zero value, should trigger validation error
	_, err := commands.NewRestockStationCommand("Pasta Bar", invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, ingredient.ErrIngredientIsNotConstructed)
}
