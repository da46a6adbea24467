package queries

import (
	"errors"

	"bistro/internal/pkg/guard"
)

var (
	ErrGetStationQueryIsNotConstructed = errors.New(
		"GetStationQuery must be created via NewGetStationQuery constructor",
	)
	ErrStationNameIsRequired = errors.New("station name is required")
)

// GetStationQuery retrieves a single kitchen station by name.
//
// Example:
//
//	query, err := NewGetStationQuery("Grill")
//	if err != nil {
//	    return err
//	}
//
//	st, err := NewGetStationQueryHandler(reader).Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    return fmt.Errorf("no such station: %w", err)
//	}
type GetStationQuery struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewGetStationQuery creates a query to retrieve one station by name.
// Validates that the name is not empty.
func NewGetStationQuery(name string) (GetStationQuery, error) {
	stationQuery := GetStationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := stationQuery.setName(name); err != nil {
		return GetStationQuery{}, err
	}

	return stationQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetStationQueryIsNotConstructed if validation fails.
func (q GetStationQuery) Validate() error {
	return q.guard.Validate(ErrGetStationQueryIsNotConstructed)
}

// Name returns the requested station name.
func (q GetStationQuery) Name() string {
	return q.name
}

func (q *GetStationQuery) setName(name string) error {
	if name == "" {
		return ErrStationNameIsRequired
	}

	q.name = name
	return nil
}
