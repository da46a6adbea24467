package commands

import (
	"errors"

	"bistro/internal/pkg/guard"
)

var ErrRemoveStationCommandIsNotConstructed = errors.New(
	"RemoveStationCommand must be created via NewRemoveStationCommand constructor",
)

// RemoveStationCommand represents a request to take a station out of
// service. Stock and recipe assignments held by the station are discarded
// with it; ingredients meant to survive should be merged into another
// station first.
type RemoveStationCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewRemoveStationCommand creates a command to remove the named station.
// Validates that the name is not empty.
func NewRemoveStationCommand(name string) (RemoveStationCommand, error) {
	stationCommand := RemoveStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := stationCommand.setName(name); err != nil {
		return RemoveStationCommand{}, err
	}

	return stationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveStationCommandIsNotConstructed if validation fails.
func (c RemoveStationCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStationCommandIsNotConstructed)
}

// Name returns the station name.
func (c RemoveStationCommand) Name() string {
	return c.name
}

func (c *RemoveStationCommand) setName(name string) error {
	if name == "" {
		return ErrStationNameIsRequired
	}

	c.name = name
	return nil
}
