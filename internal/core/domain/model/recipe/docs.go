// Package recipe provides the Recipe aggregate for the bistro domain.
// A recipe names a dish, lists the ingredient quantities it requires,
// and carries preparation time, price, and a cuisine classification.
//
// The package includes:
//   - Recipe: The aggregate root describing a preparable dish
//   - Classification: An enumeration of supported cuisines
//   - DietaryRequest: A value describing guest dietary adjustments
//   - Accommodator: An extension point for custom dietary behaviour
//
// Key business rules:
//   - Recipes must have a name, at least one requirement, and a positive preparation time
//   - Requirement ingredient names are unique within a recipe
//   - The built-in dietary behaviour removes excluded ingredients from the requirements
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package recipe
