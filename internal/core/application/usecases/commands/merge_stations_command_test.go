package commands_test

import (
	"testing"

	"bistro/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMergeStationsCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewMergeStationsCommand("Grill", "Backup Grill")
	require.NoError(t, err)
	assert.Equal(t, "Grill", cmd.Destination())
	assert.Equal(t, "Backup Grill", cmd.Source())
}

func TestNewMergeStationsCommand_EmptyDestination(t *testing.T) {
	_, err := commands.NewMergeStationsCommand("", "Backup Grill")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
}

func TestNewMergeStationsCommand_EmptySource(t *testing.T) {
	_, err := commands.NewMergeStationsCommand("Grill", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSourceIsRequired)
}

func TestNewMergeStationsCommand_BothEmpty(t *testing.T) {
	_, err := commands.NewMergeStationsCommand("", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDestinationIsRequired)
	assert.ErrorIs(t, err, commands.ErrSourceIsRequired)
}
