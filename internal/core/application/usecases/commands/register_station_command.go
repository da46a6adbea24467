package commands

import (
	"errors"

	"bistro/internal/core/domain/model/ingredient"
	"bistro/internal/pkg/guard"
)

var (
	ErrRegisterStationCommandIsNotConstructed = errors.New(
		"RegisterStationCommand must be created via NewRegisterStationCommand constructor",
	)
	ErrStationNameIsRequired = errors.New("station name is required")
)

// RegisterStationCommand represents a request to add a kitchen station to
// the registry. The station may open with initial stock lots.
//
// Example:
//
//	cmd, err := NewRegisterStationCommand("Grill", []ingredient.Ingredient{beefLot})
//	if err != nil {
//	    return fmt.Errorf("invalid station data: %w", err)
//	}
//
//	handler := NewRegisterStationCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register station: %w", err)
//	}
type RegisterStationCommand struct { //nolint:recvcheck //using for validation
	name  string
	stock []ingredient.Ingredient

	guard guard.ConstructorGuard
}

// NewRegisterStationCommand creates a command to register a new station.
// Validates that the name is not empty and every initial stock lot is a
// properly constructed ingredient. The stock slice may be nil.
func NewRegisterStationCommand(name string, stock []ingredient.Ingredient) (RegisterStationCommand, error) {
	stationCommand := RegisterStationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		stationCommand.setName(name),
		stationCommand.setStock(stock),
	); err != nil {
		return RegisterStationCommand{}, err
	}

	return stationCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterStationCommandIsNotConstructed if validation fails.
func (c RegisterStationCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStationCommandIsNotConstructed)
}

// Name returns the station name.
func (c RegisterStationCommand) Name() string {
	return c.name
}

// Stock returns the initial stock lots, possibly empty.
func (c RegisterStationCommand) Stock() []ingredient.Ingredient {
	return c.stock
}

func (c *RegisterStationCommand) setName(name string) error {
	if name == "" {
		return ErrStationNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterStationCommand) setStock(stock []ingredient.Ingredient) error {
	for _, lot := range stock {
		if err := lot.Validate(); err != nil {
			return err
		}
	}

	c.stock = make([]ingredient.Ingredient, len(stock))
	copy(c.stock, stock)
	return nil
}
