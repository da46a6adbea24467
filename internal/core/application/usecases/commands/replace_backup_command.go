package commands

import (
	"errors"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/pkg/guard"
)

var ErrReplaceBackupCommandIsNotConstructed = errors.New(
	"ReplaceBackupCommand must be created via NewReplaceBackupCommand constructor",
)

// ReplaceBackupCommand represents a request to replace the entire contents
// of the backup pool with a new set of ingredient lots. Unlike
// RestockBackupCommand, which accumulates on top of the existing pool,
// this command discards whatever the pool currently holds. An empty lot
// list is valid and leaves the pool empty.
type ReplaceBackupCommand struct { //nolint:recvcheck //using for validation
	lots []ingredient.Ingredient

	guard guard.ConstructorGuard
}

// NewReplaceBackupCommand creates a command to replace the backup pool.
// Validates that every lot is a properly constructed ingredient. The lot
// slice may be nil or empty.
func NewReplaceBackupCommand(lots []ingredient.Ingredient) (ReplaceBackupCommand, error) {
	replaceCommand := ReplaceBackupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := replaceCommand.setLots(lots); err != nil {
		return ReplaceBackupCommand{}, err
	}

	return replaceCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReplaceBackupCommandIsNotConstructed if validation fails.
func (c ReplaceBackupCommand) Validate() error {
	return c.guard.Validate(ErrReplaceBackupCommandIsNotConstructed)
}

// Lots returns the ingredient lots the pool will hold afterwards.
func (c ReplaceBackupCommand) Lots() []ingredient.Ingredient {
	return c.lots
}

func (c *ReplaceBackupCommand) setLots(lots []ingredient.Ingredient) error {
	for _, lot := range lots {
		if err := lot.Validate(); err != nil {
			return err
		}
	}

	c.lots = make([]ingredient.Ingredient, len(lots))
	copy(c.lots, lots)
	return nil
}
