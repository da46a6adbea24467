package commands

import (
	"context"

	"bistro/internal/core/domain/model/station"
)

// RegisterStationCommandHandler handles the business logic for opening a
// kitchen station: the station is created, stocked with any initial lots,
// and appended to the back of the registry's fallback order.
//
// Example:
//
//	handler := NewRegisterStationCommandHandler(uowFactory)
//	cmd, _ := NewRegisterStationCommand("Grill", nil)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("station registration failed: %w", err)
//	}
type RegisterStationCommandHandler struct {
	uowFactory StationsUoWFactory
}

// NewRegisterStationCommandHandler creates a handler for station registration.
// Requires a StationsUoWFactory for transactional registry updates.
func NewRegisterStationCommandHandler(uowFactory StationsUoWFactory) RegisterStationCommandHandler {
	return RegisterStationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the station registration command.
// Returns station.ErrStationAlreadyRegistered when the name is taken.
func (h RegisterStationCommandHandler) Handle(ctx context.Context, cmd RegisterStationCommand) error {
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

	st, err := station.NewStation(cmd.Name())
	if err != nil {
		return err
	}

	for _, lot := range cmd.Stock() {
		if err = st.Replenish(lot); err != nil {
			return err
		}
	}

	if err = uow.Registry().Add(st); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
