package commands

import (
	"errors"

	"bistro/internal/pkg/guard"
)

// ProcessOrdersCommand triggers a full fulfillment pass over the order
// queue. Every pending ticket is worked once; tickets no station could
// prepare are requeued in their original relative order.
//
// Example:
//
//	cmd := NewProcessOrdersCommand()
//	handler := NewProcessOrdersCommandHandler(uowFactory, recorder)
//
//	// Run periodically to drain the queue as stock arrives
//	ticker := time.NewTicker(5 * time.Second)
//	for range ticker.C {
//	    if _, err := handler.Handle(ctx, cmd); err != nil {
//	        log.Printf("Fulfillment pass failed: %v", err)
//	    }
//	}
type ProcessOrdersCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrProcessOrdersCommandIsNotConstructed = errors.New(
		"ProcessOrdersCommand must be created via NewProcessOrdersCommand constructor",
	)
)

// NewProcessOrdersCommand creates a command to run one fulfillment pass.
// This is a parameterless command that works every pending ticket.
func NewProcessOrdersCommand() ProcessOrdersCommand {
	command := ProcessOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessOrdersCommandIsNotConstructed if validation fails.
func (c *ProcessOrdersCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrdersCommandIsNotConstructed)
}
