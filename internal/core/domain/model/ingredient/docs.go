// Package ingredient provides the Ingredient value object shared by recipes,
// station stock, and the backup inventory pool.
//
// An Ingredient is an immutable description of a kitchen good. Depending on
// where it is used, different fields carry the meaning:
//   - Recipe requirements use the required quantity (how much a dish needs)
//   - Station stock and backup inventory use the held quantity (how much is on hand)
//   - Replenishment lots created by withdrawals use the held quantity and unit price
//
// The package follows Domain-Driven Design principles: ingredients are created
// through validating constructors, are immutable after construction, and the
// zero value fails validation.
package ingredient
