package commands

import (
	"context"
)

// RemoveStationCommandHandler handles the business logic for taking a
// station out of service. Later stations close up in the fallback order.
type RemoveStationCommandHandler struct {
	uowFactory StationsUoWFactory
}

// NewRemoveStationCommandHandler creates a handler for station removal.
// Requires a StationsUoWFactory for transactional registry updates.
func NewRemoveStationCommandHandler(uowFactory StationsUoWFactory) RemoveStationCommandHandler {
	return RemoveStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station removal command.
// Returns station.ErrStationNotFound when no such station is registered.
func (h RemoveStationCommandHandler) Handle(ctx context.Context, cmd RemoveStationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.Registry().Remove(cmd.Name()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
