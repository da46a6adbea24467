package services

import (
	"errors"
	"time"

	"bistro/internal/core/domain/model/inventory"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/core/domain/model/recipe"
	"bistro/internal/core/domain/model/station"
)

// ErrNoCapableStation is returned when no station can prepare a ticket's
// recipe. This occurs when no registered station offers the recipe, or when
// every offering station is short on stock and the backup pool cannot cover
// the missing quantities.
var ErrNoCapableStation = errors.New("no station can prepare the recipe")

// Report summarizes one fulfillment pass over the order queue.
type Report struct {
	// Outcomes lists every worked ticket in the order it was taken
	// from the queue.
	Outcomes []Outcome
	// Fulfilled counts tickets prepared during the pass.
	Fulfilled int
	// Requeued counts tickets returned to the queue unprepared.
	Requeued int
	// Elapsed is the wall-clock duration of the pass.
	Elapsed time.Duration
}

// Outcome records what happened to a single ticket during a pass.
type Outcome struct {
	// TicketID identifies the worked ticket.
	TicketID kernel.UUID
	// Recipe is the name of the ordered dish.
	Recipe string
	// Fulfilled reports whether a station prepared the dish.
	Fulfilled bool
	// Station is the preparing station's name, empty when unfulfilled.
	Station string
}

// FulfillmentService is a domain service that works order tickets against
// the station registry, drawing on the backup ingredient pool when a
// station runs short.
//
// Key responsibilities:
//   - Walking stations in registry fallback order for each ticket
//   - Topping stations up from the backup pool when stock falls short
//   - Rebuilding the queue from the tickets a pass could not prepare
//
// Business rules:
//   - A station is only tried when it offers the ticket's recipe by name
//   - The quantities checked and deducted are the ticket's own recipe
//     copy, so dietary adjustments made at order time are honored
//   - Ingredient lots withdrawn from the backup pool stay at the station
//     even when a later withdrawal fails; there is no rollback
//   - After a successful replenishment the station gets exactly one more
//     preparation attempt before the walk moves on
//   - An unprepared ticket keeps its queue position relative to the other
//     unprepared tickets
//
// Example usage:
//
//	engine := services.NewFulfillmentService()
//	recorder := services.NewCollectingRecorder()
//
//	report, err := engine.ProcessQueue(queue, registry, backup, recorder)
//	if err != nil {
//	    // Kitchen state was invalid; nothing was processed
//	    return
//	}
//	for _, line := range services.Trace(recorder.Events()) {
//	    fmt.Println(line)
//	}
type FulfillmentService struct{}

// NewFulfillmentService creates a new FulfillmentService instance.
//
// Returns:
//   - FulfillmentService: A new instance ready for fulfillment operations
func NewFulfillmentService() FulfillmentService {
	return FulfillmentService{}
}

// Fulfill works a single ticket: stations are tried in registry fallback
// order until one prepares the ticket's recipe. A station short on stock
// is topped up from the backup pool and retried once; when the pool cannot
// cover a missing quantity the station is abandoned as it stands and the
// walk moves on.
//
// Parameters:
//   - ticket: The pending ticket to prepare (must be valid)
//   - registry: The station registry walked in fallback order
//   - backup: The shared backup ingredient pool
//   - recorder: Receives the step-by-step events; may be nil
//
// Returns:
//   - *station.Station: The station that prepared the dish
//   - error: ErrNoCapableStation if every station was tried without
//     success, or validation errors for invalid inputs
func (s FulfillmentService) Fulfill(
	ticket *order.Ticket,
	registry *station.Registry,
	backup *inventory.Backup,
	recorder Recorder,
) (*station.Station, error) {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	if err := ticket.Validate(); err != nil {
		return nil, err
	}
	if err := ticket.Status().ValidateFulfill(); err != nil {
		return nil, err
	}
	if err := registry.Validate(); err != nil {
		return nil, err
	}
	if err := backup.Validate(); err != nil {
		return nil, err
	}

	rcp := ticket.Recipe()
	for _, st := range registry.Stations() {
		recorder.Record(Event{Kind: EventAttemptStarted, Station: st.Name(), Recipe: rcp.Name(), TicketID: ticket.ID()})

		if !st.HasRecipe(rcp.Name()) {
			recorder.Record(Event{Kind: EventRecipeNotAssigned, Station: st.Name(), Recipe: rcp.Name(), TicketID: ticket.ID()})
			continue
		}

		if st.CanCompleteRecipe(rcp) {
			if err := st.PrepareRecipe(rcp); err != nil {
				recorder.Record(Event{Kind: EventPrepareFailed, Station: st.Name(), Recipe: rcp.Name(), TicketID: ticket.ID(), Err: err})
				continue
			}
			return s.complete(st, ticket, recorder)
		}

		recorder.Record(Event{Kind: EventReplenishing, Station: st.Name(), Recipe: rcp.Name(), TicketID: ticket.ID()})
		if err := s.replenishFromBackup(st, rcp, backup); err != nil {
			recorder.Record(Event{Kind: EventReplenishFailed, Station: st.Name(), Recipe: rcp.Name(), TicketID: ticket.ID(), Err: err})
			continue
		}
		recorder.Record(Event{Kind: EventReplenished, Station: st.Name(), Recipe: rcp.Name(), TicketID: ticket.ID()})

		if err := st.PrepareRecipe(rcp); err != nil {
			recorder.Record(Event{Kind: EventPrepareFailed, Station: st.Name(), Recipe: rcp.Name(), TicketID: ticket.ID(), Err: err})
			continue
		}
		return s.complete(st, ticket, recorder)
	}

	recorder.Record(Event{Kind: EventNotPrepared, Recipe: rcp.Name(), TicketID: ticket.ID()})
	return nil, ErrNoCapableStation
}

// ProcessQueue runs one full fulfillment pass: every queued ticket is
// taken in placement order and worked through Fulfill. Tickets that could
// not be prepared go back on the queue in their relative order.
//
// The pass itself never fails for business reasons; an empty queue yields
// an empty report. Errors are returned only for invalid kitchen state, in
// which case the queue may be partially drained and the caller should
// discard the transaction.
//
// Parameters:
//   - queue: The order queue to drain and rebuild
//   - registry: The station registry walked in fallback order
//   - backup: The shared backup ingredient pool
//   - recorder: Receives the step-by-step events; may be nil
//
// Returns:
//   - Report: Per-ticket outcomes and pass totals
//   - error: Validation errors for invalid inputs
func (s FulfillmentService) ProcessQueue(
	queue *order.Queue,
	registry *station.Registry,
	backup *inventory.Backup,
	recorder Recorder,
) (Report, error) {
	if recorder == nil {
		recorder = nopRecorder{}
	}

	if err := queue.Validate(); err != nil {
		return Report{}, err
	}
	if err := registry.Validate(); err != nil {
		return Report{}, err
	}
	if err := backup.Validate(); err != nil {
		return Report{}, err
	}

	started := time.Now()

	var (
		report  Report
		holding []*order.Ticket
	)
	for queue.Len() > 0 {
		ticket, err := queue.Dequeue()
		if err != nil {
			return Report{}, err
		}

		recorder.Record(Event{Kind: EventTicketStarted, Recipe: ticket.RecipeName(), TicketID: ticket.ID()})

		st, err := s.Fulfill(ticket, registry, backup, recorder)
		switch {
		case err == nil:
			report.Fulfilled++
			report.Outcomes = append(report.Outcomes, Outcome{
				TicketID:  ticket.ID(),
				Recipe:    ticket.RecipeName(),
				Fulfilled: true,
				Station:   st.Name(),
			})
		case errors.Is(err, ErrNoCapableStation):
			report.Requeued++
			holding = append(holding, ticket)
			report.Outcomes = append(report.Outcomes, Outcome{
				TicketID: ticket.ID(),
				Recipe:   ticket.RecipeName(),
			})
		default:
			return Report{}, err
		}
	}

	if err := queue.ReplaceAll(holding); err != nil {
		return Report{}, err
	}

	report.Elapsed = time.Since(started)
	recorder.Record(Event{
		Kind:      EventPassCompleted,
		Fulfilled: report.Fulfilled,
		Requeued:  report.Requeued,
		Elapsed:   report.Elapsed,
	})
	return report, nil
}

// PrepareNext prepares the ticket at the front of the queue at the first
// station that can complete it with stock already on hand. The backup pool
// is not consulted. On success the ticket is dequeued and fulfilled; when
// no station can complete the recipe the ticket stays at the front.
//
// Parameters:
//   - queue: The order queue; only the front ticket is considered
//   - registry: The station registry walked in fallback order
//
// Returns:
//   - *station.Station: The station that prepared the dish
//   - error: order.ErrQueueEmpty if the queue has no tickets,
//     ErrNoCapableStation if no station can complete the recipe
func (s FulfillmentService) PrepareNext(queue *order.Queue, registry *station.Registry) (*station.Station, error) {
	if err := queue.Validate(); err != nil {
		return nil, err
	}
	if err := registry.Validate(); err != nil {
		return nil, err
	}

	ticket, err := queue.Peek()
	if err != nil {
		return nil, err
	}
	if err := ticket.Status().ValidateFulfill(); err != nil {
		return nil, err
	}

	rcp := ticket.Recipe()
	for _, st := range registry.Stations() {
		if !st.CanCompleteRecipe(rcp) {
			continue
		}
		if err := st.PrepareRecipe(rcp); err != nil {
			continue
		}

		if _, err := queue.Dequeue(); err != nil {
			return nil, err
		}
		if err := ticket.Fulfill(st.Name()); err != nil {
			return nil, err
		}
		return st, nil
	}

	return nil, ErrNoCapableStation
}

// complete marks the ticket fulfilled by the station and records the
// success. Called only after the station deducted the recipe's stock.
func (s FulfillmentService) complete(st *station.Station, ticket *order.Ticket, recorder Recorder) (*station.Station, error) {
	if err := ticket.Fulfill(st.Name()); err != nil {
		return nil, err
	}
	recorder.Record(Event{Kind: EventPrepared, Station: st.Name(), Recipe: ticket.RecipeName(), TicketID: ticket.ID()})
	return st, nil
}

// replenishFromBackup tops the station up for every quantity it is missing
// for the recipe. Withdrawals apply immediately: when a later shortfall
// cannot be covered, lots already moved stay at the station and the error
// is returned.
func (s FulfillmentService) replenishFromBackup(st *station.Station, rcp *recipe.Recipe, backup *inventory.Backup) error {
	shortfalls, err := st.ShortfallsFor(rcp)
	if err != nil {
		return err
	}

	for _, shortfall := range shortfalls {
		lot, err := backup.Withdraw(shortfall.Name, shortfall.Quantity)
		if err != nil {
			return err
		}
		if err := st.Replenish(lot); err != nil {
			return err
		}
	}
	return nil
}
