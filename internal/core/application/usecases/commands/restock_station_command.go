package commands

import (
	"errors"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/pkg/guard"
)

var ErrRestockStationCommandIsNotConstructed = errors.New(
	"RestockStationCommand must be created via NewRestockStationCommand constructor",
)

// RestockStationCommand represents a request to deposit one ingredient lot
// into a station's working stock.
type RestockStationCommand struct { //nolint:recvcheck //using for validation
	stationName string
	lot         ingredient.Ingredient

	guard guard.ConstructorGuard
}

// NewRestockStationCommand creates a command to restock the named station.
// Validates that the station name is present and the lot is a properly
// constructed ingredient.
func NewRestockStationCommand(stationName string, lot ingredient.Ingredient) (RestockStationCommand, error) {
	restockCommand := RestockStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restockCommand.setStationName(stationName),
		restockCommand.setLot(lot),
	); err != nil {
		return RestockStationCommand{}, err
	}

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestockStationCommandIsNotConstructed if validation fails.
func (c RestockStationCommand) Validate() error {
	return c.guard.Validate(ErrRestockStationCommandIsNotConstructed)
}

// StationName returns the name of the station receiving the lot.
func (c RestockStationCommand) StationName() string {
	return c.stationName
}

// Lot returns the ingredient lot to deposit.
func (c RestockStationCommand) Lot() ingredient.Ingredient {
	return c.lot
}

func (c *RestockStationCommand) setStationName(stationName string) error {
	if stationName == "" {
		return ErrStationNameIsRequired
	}

	c.stationName = stationName
	return nil
}

func (c *RestockStationCommand) setLot(lot ingredient.Ingredient) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	c.lot = lot
	return nil
}
