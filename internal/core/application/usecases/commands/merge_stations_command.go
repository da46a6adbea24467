package commands

import (
	"errors"

	"bistro/internal/pkg/guard"
)

var (
	ErrMergeStationsCommandIsNotConstructed = errors.New(
		"MergeStationsCommand must be created via NewMergeStationsCommand constructor",
	)
	ErrDestinationIsRequired = errors.New("destination station name is required")
	ErrSourceIsRequired      = errors.New("source station name is required")
)

// MergeStationsCommand represents a request to fold one station into
// another: the source's recipe assignments and stock move to the
// destination, and the source leaves the registry.
//
// Example:
//
//	cmd, err := NewMergeStationsCommand("Grill", "Broiler")
//	if err != nil {
//	    return fmt.Errorf("invalid merge request: %w", err)
//	}
//
//	handler := NewMergeStationsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to merge stations: %w", err)
//	}
type MergeStationsCommand struct { //nolint:recvcheck //using for validation
	destination string
	source      string

	guard guard.ConstructorGuard
}

// NewMergeStationsCommand creates a command to merge the source station
// into the destination station. Validates that both names are present.
// Merging a station into itself is rejected by the registry.
func NewMergeStationsCommand(destination string, source string) (MergeStationsCommand, error) {
	mergeCommand := MergeStationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		mergeCommand.setDestination(destination),
		mergeCommand.setSource(source),
	); err != nil {
		return MergeStationsCommand{}, err
	}

	return mergeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMergeStationsCommandIsNotConstructed if validation fails.
func (c MergeStationsCommand) Validate() error {
	return c.guard.Validate(ErrMergeStationsCommandIsNotConstructed)
}

// Destination returns the name of the station that absorbs the source.
func (c MergeStationsCommand) Destination() string {
	return c.destination
}

// Source returns the name of the station being folded in.
func (c MergeStationsCommand) Source() string {
	return c.source
}

func (c *MergeStationsCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *MergeStationsCommand) setSource(source string) error {
	if source == "" {
		return ErrSourceIsRequired
	}

	c.source = source
	return nil
}
