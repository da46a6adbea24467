package commands

import (
	"context"

	"bistro/internal/core/domain/services"
)

// ProcessOrdersResult carries the outcome of one fulfillment pass.
type ProcessOrdersResult struct {
	// Report summarizes the pass: per-ticket outcomes and totals.
	Report services.Report
	// Events lists everything that happened during the pass in order,
	// suitable for rendering a preparation trace with services.Trace.
	Events []services.Event
}

// ProcessOrdersCommandHandler orchestrates a fulfillment pass over the
// whole order queue. Stations are tried in fallback order and may draw on
// the backup pool when their own stock runs short. The pass, including
// every stock movement it causes, commits as a single transaction.
//
// Example:
//
//	handler := NewProcessOrdersCommandHandler(uowFactory, recorder)
//	cmd := NewProcessOrdersCommand()
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoPendingOrders):
//	    log.Println("Queue is empty")
//	case err != nil:
//	    log.Printf("Fulfillment pass failed: %v", err)
//	default:
//	    for _, line := range services.Trace(result.Events) {
//	        fmt.Println(line)
//	    }
//	}
type ProcessOrdersCommandHandler struct {
	uowFactory KitchenUoWFactory
	recorder   services.Recorder
}

// NewProcessOrdersCommandHandler creates a handler for fulfillment passes.
// Requires a KitchenUoWFactory covering the registry, the backup pool and
// the queue. The recorder observes fulfillment events as they happen; pass
// nil when no live observer is wanted, the result still collects events.
func NewProcessOrdersCommandHandler(
	uowFactory KitchenUoWFactory,
	recorder services.Recorder,
) ProcessOrdersCommandHandler {
	return ProcessOrdersCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
	}
}

// Handle processes the fulfillment pass command.
// Returns ErrNoPendingOrders when the queue has no tickets to work.
func (h ProcessOrdersCommandHandler) Handle(ctx context.Context, cmd ProcessOrdersCommand) (ProcessOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return ProcessOrdersResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ProcessOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if uow.Orders().Len() == 0 {
		return ProcessOrdersResult{}, ErrNoPendingOrders
	}

	collector := services.NewCollectingRecorder()
	recorder := services.Recorders(h.recorder, collector)

	report, err := services.NewFulfillmentService().ProcessQueue(
		uow.Orders(), uow.Registry(), uow.Backup(), recorder)
	if err != nil {
		return ProcessOrdersResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ProcessOrdersResult{}, err
	}

	return ProcessOrdersResult{
		Report: report,
		Events: collector.Events(),
	}, nil
}
