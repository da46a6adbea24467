package commands

import (
	"context"
)

// MergeStationsCommandHandler handles the business logic for consolidating
// two stations. The destination keeps its position in the fallback order
// and its own recipe definitions where names collide; the source's stock
// is deposited on top of the destination's.
type MergeStationsCommandHandler struct {
	uowFactory StationsUoWFactory
}

// NewMergeStationsCommandHandler creates a handler for station merges.
// Requires a StationsUoWFactory for transactional registry updates.
func NewMergeStationsCommandHandler(uowFactory StationsUoWFactory) MergeStationsCommandHandler {
	return MergeStationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the merge command.
// Returns station.ErrStationNotFound when either station is missing and a
// validation error when destination and source name the same station.
func (h MergeStationsCommandHandler) Handle(ctx context.Context, cmd MergeStationsCommand) error {
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

	if err := uow.Registry().Merge(cmd.Destination(), cmd.Source()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
