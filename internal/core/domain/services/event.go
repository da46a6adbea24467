package services

import (
	"time"

	"bistro/internal/core/domain/model/kernel"
)

// EventKind identifies what happened at one step of a fulfillment pass.
type EventKind int

const (
	// EventUnknown represents an invalid or undefined event kind.
	// This value (0) helps catch uninitialized events.
	EventUnknown EventKind = iota

	// EventTicketStarted marks the kitchen picking up a ticket from the queue.
	EventTicketStarted

	// EventAttemptStarted marks a station being tried for a ticket.
	EventAttemptStarted

	// EventRecipeNotAssigned marks a station skipped because it does not
	// offer the ticket's recipe.
	EventRecipeNotAssigned

	// EventPrepared marks a station successfully preparing the recipe.
	EventPrepared

	// EventPrepareFailed marks a station failing to prepare the recipe
	// even though it was attempted.
	EventPrepareFailed

	// EventReplenishing marks a station short on stock turning to the
	// backup pool.
	EventReplenishing

	// EventReplenished marks every missing quantity covered from the
	// backup pool.
	EventReplenished

	// EventReplenishFailed marks the backup pool unable to cover a
	// missing quantity. Lots already moved stay at the station.
	EventReplenishFailed

	// EventNotPrepared marks a ticket leaving the pass unprepared after
	// every station was tried.
	EventNotPrepared

	// EventPassCompleted marks the end of a full pass over the queue.
	EventPassCompleted
)

// String returns a stable snake_case name for the event kind, suitable
// for structured log attributes and metric labels.
func (k EventKind) String() string {
	switch k {
	case EventTicketStarted:
		return "ticket_started"
	case EventAttemptStarted:
		return "attempt_started"
	case EventRecipeNotAssigned:
		return "recipe_not_assigned"
	case EventPrepared:
		return "prepared"
	case EventPrepareFailed:
		return "prepare_failed"
	case EventReplenishing:
		return "replenishing"
	case EventReplenished:
		return "replenished"
	case EventReplenishFailed:
		return "replenish_failed"
	case EventNotPrepared:
		return "not_prepared"
	case EventPassCompleted:
		return "pass_completed"
	default:
		return "unknown"
	}
}

// Event is one step of a fulfillment pass. Station, Recipe and TicketID
// are set where the kind concerns them; Err carries the cause on the
// failure kinds. Fulfilled, Requeued and Elapsed are set on
// EventPassCompleted only.
type Event struct {
	Kind     EventKind
	Station  string
	Recipe   string
	TicketID kernel.UUID
	Err      error

	Fulfilled int
	Requeued  int
	Elapsed   time.Duration
}

// Recorder receives fulfillment events in the order the kitchen produces
// them. Implementations must not mutate domain state; the engine calls
// Record synchronously between steps.
type Recorder interface {
	Record(event Event)
}

// RecorderFunc adapts a plain function to the Recorder interface.
type RecorderFunc func(event Event)

// Record calls the function itself.
func (f RecorderFunc) Record(event Event) {
	f(event)
}

// Recorders fans one event stream out to several recorders in order.
// Nil entries are skipped.
func Recorders(recorders ...Recorder) Recorder {
	fanout := make(multiRecorder, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			fanout = append(fanout, r)
		}
	}
	return fanout
}

type multiRecorder []Recorder

func (m multiRecorder) Record(event Event) {
	for _, r := range m {
		r.Record(event)
	}
}

// CollectingRecorder accumulates events in arrival order. It backs the
// pass trace returned to API callers and event assertions in tests.
type CollectingRecorder struct {
	events []Event
}

// NewCollectingRecorder creates an empty CollectingRecorder.
func NewCollectingRecorder() *CollectingRecorder {
	return &CollectingRecorder{}
}

// Record appends the event.
func (r *CollectingRecorder) Record(event Event) {
	r.events = append(r.events, event)
}

// Events returns a copy of the recorded events in arrival order.
func (r *CollectingRecorder) Events() []Event {
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}

// nopRecorder discards every event. The engine substitutes it when the
// caller passes a nil Recorder.
type nopRecorder struct{}

func (nopRecorder) Record(Event) {}
