package commands

import (
	"errors"

	"bistro/internal/pkg/guard"
)

var ErrPromoteStationCommandIsNotConstructed = errors.New(
	"PromoteStationCommand must be created via NewPromoteStationCommand constructor",
)

// PromoteStationCommand represents a request to move a station to the
// front of the registry's fallback order so fulfillment tries it first.
// The relative order of the other stations is preserved.
type PromoteStationCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewPromoteStationCommand creates a command to promote the named station.
// Validates that the name is not empty.
func NewPromoteStationCommand(name string) (PromoteStationCommand, error) {
	stationCommand := PromoteStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := stationCommand.setName(name); err != nil {
		return PromoteStationCommand{}, err
	}

	return stationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPromoteStationCommandIsNotConstructed if validation fails.
func (c PromoteStationCommand) Validate() error {
	return c.guard.Validate(ErrPromoteStationCommandIsNotConstructed)
}

// Name returns the station name.
func (c PromoteStationCommand) Name() string {
	return c.name
}

func (c *PromoteStationCommand) setName(name string) error {
	if name == "" {
		return ErrStationNameIsRequired
	}

	c.name = name
	return nil
}
