package queries

import (
	"errors"

	"bistro/internal/pkg/guard"
)

var (
	ErrGetStationsQueryIsNotConstructed = errors.New(
		"GetStationsQuery must be created via NewGetStationsQuery constructor",
	)
)

// GetStationsQuery retrieves every registered kitchen station.
// Stations come back in fallback order, the order fulfillment tries them.
//
// Example:
//
//	query := NewGetStationsQuery()
//	handler := NewGetStationsQueryHandler(reader)
//
//	stations, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve stations: %w", err)
//	}
//
//	for _, st := range stations {
//	    fmt.Printf("%d. %s offers %d recipes\n", st.Position, st.Name, len(st.Recipes))
//	}
type GetStationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStationsQuery creates a query to retrieve all stations.
// This is a parameterless query that fetches the complete registry.
func NewGetStationsQuery() GetStationsQuery {
	return GetStationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStationsQueryIsNotConstructed if validation fails.
func (q GetStationsQuery) Validate() error {
	return q.guard.Validate(ErrGetStationsQueryIsNotConstructed)
}
