package commands

import (
	"context"
	"errors"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/services"
)

var ErrNoPendingOrders = errors.New("no pending orders in the queue")

// PreparedOrder reports which ticket was prepared and at which station.
type PreparedOrder struct {
	TicketID kernel.UUID
	Recipe   string
	Station  string
}

// PrepareNextOrderCommandHandler orchestrates preparation of the front
// ticket. The ticket is prepared at the first station in fallback order
// that can complete its recipe from stock already on hand; the backup
// pool is never touched. When no station qualifies the ticket stays at
// the front of the queue.
//
// Example:
//
//	handler := NewPrepareNextOrderCommandHandler(uowFactory)
//	cmd := NewPrepareNextOrderCommand()
//	prepared, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("Queue is empty")
//	case errors.Is(err, services.ErrNoCapableStation):
//	    log.Println("No station has enough stock")
//	case err != nil:
//	    log.Printf("Preparation failed: %v", err)
//	default:
//	    log.Printf("%s prepared %s", prepared.Station, prepared.Recipe)
//	}
type PrepareNextOrderCommandHandler struct {
	uowFactory OrdersUoWFactory
}

// NewPrepareNextOrderCommandHandler creates a handler for front-ticket
// preparation. Requires an OrdersUoWFactory for coordinating transactional
// updates across the registry and the queue.
func NewPrepareNextOrderCommandHandler(uowFactory OrdersUoWFactory) PrepareNextOrderCommandHandler {
	return PrepareNextOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the preparation command.
// Returns ErrNoPendingOrders when the queue is empty and
// services.ErrNoCapableStation when no station can complete the recipe.
func (h PrepareNextOrderCommandHandler) Handle(ctx context.Context, cmd PrepareNextOrderCommand) (PreparedOrder, error) {
	if err := cmd.Validate(); err != nil {
		return PreparedOrder{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return PreparedOrder{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ticket, err := uow.Orders().Peek()
	if errors.Is(err, order.ErrQueueEmpty) {
		return PreparedOrder{}, ErrNoPendingOrders
	}
	if err != nil {
		return PreparedOrder{}, err
	}

	preparedAt, err := services.NewFulfillmentService().PrepareNext(uow.Orders(), uow.Registry())
	if err != nil {
		return PreparedOrder{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return PreparedOrder{}, err
	}

	return PreparedOrder{
		TicketID: ticket.ID(),
		Recipe:   ticket.RecipeName(),
		Station:  preparedAt.Name(),
	}, nil
}
