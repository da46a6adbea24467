// Package services holds the domain services of the kitchen, the workflows
// that cut across several aggregates and fit none of them alone.
//
// The package includes:
//   - FulfillmentService: works order tickets against the station registry,
//     drawing on the backup ingredient pool when stock falls short
//   - Event and Recorder: the step-by-step event stream a fulfillment pass
//     emits, with collecting, fan-out, and structured-logging recorders
//   - Trace rendering: the human-readable pass trace built from the events
//
// Aggregates stay unaware of each other; any rule that needs a station, a
// ticket, and the backup pool at once lives here.
package services
