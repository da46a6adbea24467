// Package station provides domain entities and business logic for kitchen
// station management in the bistro system. It implements the Station
// aggregate root together with its Stock entity and the Registry that
// keeps the fleet of stations in fallback order.
//
// The package includes:
//   - Station: The aggregate root holding assigned recipes and ingredient stock
//   - Stock: An entity tracking the ingredient quantities a station has on hand
//   - Registry: An ordered collection of stations with by-name lookup
//
// Key business rules:
//   - Station names are unique within a registry
//   - A station can prepare a recipe only when it is assigned and every
//     required ingredient is held in sufficient quantity
//   - Preparing a recipe atomically deducts every required quantity;
//     insufficiency never causes a partial deduction
//   - Registry order is the order stations are tried in during fulfillment
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package station
