package queries

import (
	"context"

	"bistro/internal/core/ports"
)

// GetPendingOrdersQueryHandler retrieves the order queue from committed
// kitchen state.
type GetPendingOrdersQueryHandler struct {
	reader ports.KitchenReader
}

// NewGetPendingOrdersQueryHandler creates a handler for order queue queries.
// Requires a KitchenReader for access to committed state.
func NewGetPendingOrdersQueryHandler(reader ports.KitchenReader) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{reader: reader}
}

// Handle executes the query to retrieve the order queue.
// Returns ticket views in queue order, positions starting at 1.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]TicketView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tickets, err := h.reader.ViewOrders(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TicketView, 0, len(tickets))
	for i, ticket := range tickets {
		views = append(views, newTicketView(ticket, i+1))
	}

	return views, nil
}
