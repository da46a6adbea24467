// Package inventory provides the Backup aggregate: the bistro's shared
// reserve of ingredients that stations draw from when their own stock
// runs short.
//
// Key business rules:
//   - The pool keeps one entry per ingredient name; deposits for an
//     existing entry increment it and keep the original unit price
//   - Withdrawals are all-or-nothing: a withdrawal larger than the
//     entry's quantity fails without changing the pool
//   - An entry drawn down to exactly zero is removed from the pool
//   - Listing preserves first-insertion order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package inventory
