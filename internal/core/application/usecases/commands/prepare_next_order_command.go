package commands

import (
	"errors"

	"bistro/internal/pkg/guard"
)

// PrepareNextOrderCommand triggers preparation of the ticket at the front
// of the order queue. Only stock already on hand at the stations is used;
// the backup pool is not consulted.
//
// Example:
//
//	cmd := NewPrepareNextOrderCommand()
//	handler := NewPrepareNextOrderCommandHandler(uowFactory)
//
//	prepared, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Preparation failed: %v", err)
//	    return
//	}
//	fmt.Printf("%s prepared %s", prepared.Station, prepared.Recipe)
type PrepareNextOrderCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrPrepareNextOrderCommandIsNotConstructed = errors.New(
		"PrepareNextOrderCommand must be created via NewPrepareNextOrderCommand constructor",
	)
)

// NewPrepareNextOrderCommand creates a command to prepare the front ticket.
// This is a parameterless command; the queue decides which ticket is next.
func NewPrepareNextOrderCommand() PrepareNextOrderCommand {
	command := PrepareNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrPrepareNextOrderCommandIsNotConstructed if validation fails.
func (c *PrepareNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrPrepareNextOrderCommandIsNotConstructed)
}
