package commands

import (
	"errors"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/pkg/guard"
)

var ErrRestockBackupCommandIsNotConstructed = errors.New(
	"RestockBackupCommand must be created via NewRestockBackupCommand constructor",
)

// RestockBackupCommand represents a request to deposit one ingredient lot
// into the kitchen's shared backup pool, the reserve stations draw on when
// their own stock runs short.
type RestockBackupCommand struct { //nolint:recvcheck //using for validation
	lot ingredient.Ingredient

	guard guard.ConstructorGuard
}

// NewRestockBackupCommand creates a command to restock the backup pool.
// Validates that the lot is a properly constructed ingredient.
func NewRestockBackupCommand(lot ingredient.Ingredient) (RestockBackupCommand, error) {
	restockCommand := RestockBackupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := restockCommand.setLot(lot); err != nil {
		return RestockBackupCommand{}, err
	}

	return restockCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRestockBackupCommandIsNotConstructed if validation fails.
func (c RestockBackupCommand) Validate() error {
	return c.guard.Validate(ErrRestockBackupCommandIsNotConstructed)
}

// Lot returns the ingredient lot to deposit.
func (c RestockBackupCommand) Lot() ingredient.Ingredient {
	return c.lot
}

func (c *RestockBackupCommand) setLot(lot ingredient.Ingredient) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	c.lot = lot
	return nil
}
