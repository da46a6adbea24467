package queries

import (
	"context"

	"bistro/internal/core/ports"
	"bistro/internal/pkg/errs"
)

// GetStationQueryHandler retrieves a single station from committed kitchen
// state, including its position in the fallback order.
type GetStationQueryHandler struct {
	reader ports.KitchenReader
}

// NewGetStationQueryHandler creates a handler for single-station queries.
// Requires a KitchenReader for access to committed state.
func NewGetStationQueryHandler(reader ports.KitchenReader) GetStationQueryHandler {
	return GetStationQueryHandler{reader: reader}
}

// Handle executes the query to retrieve the named station.
// Returns an error matching errs.ErrObjectNotFound when no station with
// the requested name is registered.
func (h GetStationQueryHandler) Handle(
	ctx context.Context,
	query GetStationQuery,
) (StationView, error) {
	if err := query.Validate(); err != nil {
		return StationView{}, err
	}

	stations, err := h.reader.ViewStations(ctx)
	if err != nil {
		return StationView{}, err
	}

	for i, st := range stations {
		if st.Name() == query.Name() {
			return newStationView(st, i+1), nil
		}
	}

	return StationView{}, errs.NewObjectNotFoundError("station", query.Name())
}
