// Package metrics exposes the kitchen's fulfillment activity as Prometheus
// metrics. The collectors translate the fulfillment event stream, so wiring
// is one line: pass a Recorder into the fulfillment pass.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"bistro/internal/core/domain/services"
)

var (
	ordersFulfilled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_orders_fulfilled_total",
		Help: "Number of order tickets prepared by a station.",
	})

	ordersRequeued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_orders_requeued_total",
		Help: "Number of order tickets returned to the queue unprepared.",
	})

	stationReplenishments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_station_replenishments_total",
		Help: "Number of stations fully topped up from the backup pool.",
	})

	replenishmentFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bistro_replenishment_failures_total",
		Help: "Number of replenishment attempts the backup pool could not cover.",
	})

	passDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bistro_fulfillment_pass_duration_seconds",
		Help:    "Wall-clock duration of full fulfillment passes over the queue.",
		Buckets: prometheus.DefBuckets,
	})
)

// Recorder implements services.Recorder, translating fulfillment events
// into the package's Prometheus collectors.
type Recorder struct{}

// NewRecorder creates a metrics recorder.
func NewRecorder() Recorder {
	return Recorder{}
}

// Record updates the collectors touched by the event kind. Kinds with no
// metric mapping are ignored.
func (Recorder) Record(event services.Event) {
	switch event.Kind {
	case services.EventPrepared:
		ordersFulfilled.Inc()
	case services.EventNotPrepared:
		ordersRequeued.Inc()
	case services.EventReplenished:
		stationReplenishments.Inc()
	case services.EventReplenishFailed:
		replenishmentFailures.Inc()
	case services.EventPassCompleted:
		passDuration.Observe(event.Elapsed.Seconds())
	}
}
