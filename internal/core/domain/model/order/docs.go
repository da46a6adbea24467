// Package order provides domain entities and business logic for order
// management in the bistro system. It implements the Ticket aggregate root
// with lifecycle management and the FIFO queue tickets wait in.
//
// The package includes:
//   - Ticket: The aggregate root that carries the ordered recipe and
//     tracks which station prepared it
//   - Status: A state machine that enforces valid ticket status transitions
//   - Queue: The FIFO line of pending tickets
//
// Key business rules:
//   - Tickets must have a valid unique identifier and a valid recipe
//   - Ticket status follows a defined workflow: Pending -> Fulfilled
//   - A ticket that fails a fulfillment pass stays Pending and is requeued
//   - The queue never holds two tickets with the same ID, and the relative
//     order of retained tickets is always preserved
//
// Behavior lives on the aggregates themselves; no code outside this package
// can put a ticket or the queue into a state that violates these rules.
package order
