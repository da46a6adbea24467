package services

import (
	"fmt"
	"log/slog"
)

// TraceLine renders an event as the kitchen's human-readable pass trace
// line. The wording is part of the service's observable behavior: pass
// traces are returned to API callers and asserted against in tests.
func TraceLine(event Event) string {
	switch event.Kind {
	case EventTicketStarted:
		return fmt.Sprintf("PREPARING DISH: %s", event.Recipe)
	case EventAttemptStarted:
		return fmt.Sprintf("%s attempting to prepare %s...", event.Station, event.Recipe)
	case EventRecipeNotAssigned:
		return "Dish not available. Moving to next station..."
	case EventPrepared:
		return fmt.Sprintf("Successfully prepared %s.", event.Recipe)
	case EventPrepareFailed:
		return fmt.Sprintf("Unable to prepare %s.", event.Recipe)
	case EventReplenishing:
		return "Insufficient ingredients. Replenishing ingredients..."
	case EventReplenished:
		return "Ingredients replenished."
	case EventReplenishFailed:
		return fmt.Sprintf("Unable to replenish ingredients. Failed to prepare %s.", event.Recipe)
	case EventNotPrepared:
		return fmt.Sprintf("%s was not prepared.", event.Recipe)
	case EventPassCompleted:
		return "All dishes have been processed."
	default:
		return ""
	}
}

// Trace renders an event sequence as trace lines, one per event,
// preserving order.
func Trace(events []Event) []string {
	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, TraceLine(event))
	}
	return lines
}

// SlogRecorder logs every fulfillment event through a structured logger.
// Progress is logged at Info, per-station probing at Debug, and failures
// at Warn; the error on failure kinds rides along as an attribute.
type SlogRecorder struct {
	logger *slog.Logger
}

// NewSlogRecorder creates a SlogRecorder around the given logger. A nil
// logger falls back to slog.Default().
func NewSlogRecorder(logger *slog.Logger) *SlogRecorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogRecorder{logger: logger.With("component", "fulfillment")}
}

// Record logs the event.
func (r *SlogRecorder) Record(event Event) {
	attrs := make([]any, 0, 10)
	if event.Station != "" {
		attrs = append(attrs, "station", event.Station)
	}
	if event.Recipe != "" {
		attrs = append(attrs, "recipe", event.Recipe)
	}
	if event.TicketID.Validate() == nil {
		attrs = append(attrs, "ticket", event.TicketID.String())
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err)
	}
	if event.Kind == EventPassCompleted {
		attrs = append(attrs,
			"fulfilled", event.Fulfilled,
			"requeued", event.Requeued,
			"elapsed", event.Elapsed,
		)
	}

	switch event.Kind {
	case EventAttemptStarted, EventRecipeNotAssigned, EventReplenishing:
		r.logger.Debug(TraceLine(event), attrs...)
	case EventPrepareFailed, EventReplenishFailed, EventNotPrepared:
		r.logger.Warn(TraceLine(event), attrs...)
	default:
		r.logger.Info(TraceLine(event), attrs...)
	}
}
