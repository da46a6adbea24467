package queries

import (
	"context"

	"bistro/internal/core/ports"
)

// GetStationsQueryHandler retrieves station information from committed
// kitchen state. Reads go through the KitchenReader port, so handlers stay
// independent of the storage adapter.
//
// Example:
//
//	handler := NewGetStationsQueryHandler(reader)
//	query := NewGetStationsQuery()
//
//	stations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get stations: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d stations\n", len(stations))
type GetStationsQueryHandler struct {
	reader ports.KitchenReader
}

// NewGetStationsQueryHandler creates a handler for station retrieval queries.
// Requires a KitchenReader for access to committed state.
func NewGetStationsQueryHandler(reader ports.KitchenReader) GetStationsQueryHandler {
	return GetStationsQueryHandler{reader: reader}
}

// Handle executes the query to retrieve all stations.
// Returns station views in fallback order, positions starting at 1.
func (h GetStationsQueryHandler) Handle(
	ctx context.Context,
	query GetStationsQuery,
) ([]StationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stations, err := h.reader.ViewStations(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]StationView, 0, len(stations))
	for i, st := range stations {
		views = append(views, newStationView(st, i+1))
	}

	return views, nil
}
