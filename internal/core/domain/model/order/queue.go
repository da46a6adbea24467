package order

import (
	"errors"
	"fmt"

	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

// Domain errors for queue operations.
var (
	// ErrQueueEmpty is returned when taking or inspecting the front of
	// an empty queue.
	ErrQueueEmpty = errors.New("order queue is empty")
	// ErrTicketAlreadyQueued is returned when enqueueing a ticket whose ID
	// is already in the queue.
	ErrTicketAlreadyQueued = errors.New("ticket is already queued")
	// ErrQueueIsNotConstructed is returned when using an improperly initialized Queue.
	ErrQueueIsNotConstructed = errors.New("Queue must be created via NewQueue constructor")
)

// Queue is the bistro's FIFO line of pending order tickets.
// Tickets are served in placement order; a ticket that cannot be prepared
// in a fulfillment pass is requeued behind the tickets retained with it,
// preserving relative order.
//
// The queue never holds two tickets with the same ID.
type Queue struct {
	// tickets holds the queued tickets in placement order
	tickets []*Ticket
	// ids tracks queued ticket IDs to reject duplicates
	ids map[kernel.UUID]struct{}
	// guard ensures the queue was properly constructed
	guard guard.ConstructorGuard
}

// NewQueue creates an empty Queue.
// This is the only way to create a valid Queue instance.
func NewQueue() *Queue {
	return &Queue{
		ids:   make(map[kernel.UUID]struct{}),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate checks if the Queue is in a valid state.
//
// Returns:
//   - error: ErrQueueIsNotConstructed if not properly initialized
func (q *Queue) Validate() error {
	if q == nil {
		return ErrQueueIsNotConstructed
	}
	return q.guard.Validate(ErrQueueIsNotConstructed)
}

// Enqueue appends a ticket to the back of the queue.
//
// Parameters:
//   - ticket: The ticket to queue (must be properly constructed)
//
// Returns:
//   - error: Validation error if the ticket is invalid,
//     ErrTicketAlreadyQueued if a ticket with the same ID is queued
func (q *Queue) Enqueue(ticket *Ticket) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if ticket == nil {
		return errs.NewValueIsRequiredError("ticket")
	}
	if err := ticket.Validate(); err != nil {
		return err
	}

	if _, ok := q.ids[ticket.ID()]; ok {
		return fmt.Errorf("%w: %s", ErrTicketAlreadyQueued, ticket.ID())
	}

	q.ids[ticket.ID()] = struct{}{}
	q.tickets = append(q.tickets, ticket)
	return nil
}

// Dequeue removes and returns the ticket at the front of the queue.
//
// Returns:
//   - *Ticket: The front ticket
//   - error: ErrQueueEmpty if the queue has no tickets
func (q *Queue) Dequeue() (*Ticket, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if len(q.tickets) == 0 {
		return nil, ErrQueueEmpty
	}

	ticket := q.tickets[0]
	q.tickets = q.tickets[1:]
	delete(q.ids, ticket.ID())
	return ticket, nil
}

// Peek returns the ticket at the front of the queue without removing it.
//
// Returns:
//   - *Ticket: The front ticket
//   - error: ErrQueueEmpty if the queue has no tickets
func (q *Queue) Peek() (*Ticket, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	if len(q.tickets) == 0 {
		return nil, ErrQueueEmpty
	}

	return q.tickets[0], nil
}

// Len returns the number of queued tickets.
func (q *Queue) Len() int {
	return len(q.tickets)
}

// Tickets returns a copy of the queued tickets in queue order.
// Mutating the returned slice does not affect the queue.
func (q *Queue) Tickets() []*Ticket {
	tickets := make([]*Ticket, len(q.tickets))
	copy(tickets, q.tickets)
	return tickets
}

// ReplaceAll swaps the queue's contents wholesale, preserving the order of
// the given tickets. Used when a fulfillment pass rebuilds the queue from
// the tickets it could not prepare.
//
// Tickets are validated before anything is replaced; the queue is unchanged
// on failure.
//
// Parameters:
//   - tickets: The new queue contents
//
// Returns:
//   - error: Validation error if any ticket is invalid or a duplicate
func (q *Queue) ReplaceAll(tickets []*Ticket) error {
	if err := q.Validate(); err != nil {
		return err
	}

	ids := make(map[kernel.UUID]struct{}, len(tickets))
	for _, ticket := range tickets {
		if ticket == nil {
			return errs.NewValueIsRequiredError("ticket")
		}
		if err := ticket.Validate(); err != nil {
			return err
		}
		if _, ok := ids[ticket.ID()]; ok {
			return fmt.Errorf("%w: %s", ErrTicketAlreadyQueued, ticket.ID())
		}
		ids[ticket.ID()] = struct{}{}
	}

	q.tickets = make([]*Ticket, len(tickets))
	copy(q.tickets, tickets)
	q.ids = ids
	return nil
}

// Clear removes every ticket from the queue.
func (q *Queue) Clear() {
	q.tickets = nil
	clear(q.ids)
}

// Clone returns a deep copy of the queue, cloning each queued ticket.
func (q *Queue) Clone() *Queue {
	clone := NewQueue()
	clone.tickets = make([]*Ticket, len(q.tickets))
	for i, ticket := range q.tickets {
		clone.tickets[i] = ticket.Clone()
		clone.ids[ticket.ID()] = struct{}{}
	}
	return clone
}
