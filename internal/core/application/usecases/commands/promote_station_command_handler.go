package commands

import (
	"context"
)

// PromoteStationCommandHandler handles the business logic for prioritizing
// a station: fulfillment walks the registry front to back, so the promoted
// station gets first attempt at every order.
type PromoteStationCommandHandler struct {
	uowFactory StationsUoWFactory
}

// NewPromoteStationCommandHandler creates a handler for station promotion.
// Requires a StationsUoWFactory for transactional registry updates.
func NewPromoteStationCommandHandler(uowFactory StationsUoWFactory) PromoteStationCommandHandler {
	return PromoteStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station promotion command.
// Promoting the station already at the front is a no-op success.
// Returns station.ErrStationNotFound when no such station is registered.
func (h PromoteStationCommandHandler) Handle(ctx context.Context, cmd PromoteStationCommand) error {
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

	if err := uow.Registry().MoveToFront(cmd.Name()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
