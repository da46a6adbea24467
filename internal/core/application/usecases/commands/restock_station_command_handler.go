package commands

import (
	"context"
)

// RestockStationCommandHandler handles the business logic for depositing
// an ingredient lot at a station. Quantities accumulate on the station's
// existing line for the ingredient; the line keeps its original unit price.
type RestockStationCommandHandler struct {
	uowFactory StationsUoWFactory
}

// NewRestockStationCommandHandler creates a handler for station restocking.
// Requires a StationsUoWFactory for transactional registry updates.
func NewRestockStationCommandHandler(uowFactory StationsUoWFactory) RestockStationCommandHandler {
	return RestockStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock command.
// Returns station.ErrStationNotFound when no such station is registered.
func (h RestockStationCommandHandler) Handle(ctx context.Context, cmd RestockStationCommand) error {
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

	if err := uow.Registry().ReplenishStation(cmd.StationName(), cmd.Lot()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
