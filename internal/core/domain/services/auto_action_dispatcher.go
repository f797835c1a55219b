package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
)

// AutoActionDispatcher runs the auto-action configured for a status.
//
// Example:
//
//	dispatcher := services.NewAutoActionDispatcher(table, notifier, logger,
//	    services.WithMaterialAvailability(inventory),
//	    services.WithTimeTracking(timeSessions),
//	)
//	if dispatcher.Dispatch(ctx, o, o.Status()) {
//	    // the order was changed (invoiceReady) and needs saving
//	}
type AutoActionDispatcher struct {
	table        order.TransitionTable
	notifier     ports.NotificationSink
	materials    ports.MaterialAvailabilitySource
	timeTracking ports.TimeTrackingSource
	logger       *slog.Logger
}

// DispatcherOption configures the optional collaborators of AutoActionDispatcher.
type DispatcherOption func(*AutoActionDispatcher)

// WithMaterialAvailability enables the material check.
func WithMaterialAvailability(source ports.MaterialAvailabilitySource) DispatcherOption {
	return func(d *AutoActionDispatcher) {
		d.materials = source
	}
}

// WithTimeTracking enables the time tracking nudge.
func WithTimeTracking(source ports.TimeTrackingSource) DispatcherOption {
	return func(d *AutoActionDispatcher) {
		d.timeTracking = source
	}
}

// NewAutoActionDispatcher creates a dispatcher over table.
func NewAutoActionDispatcher(
	table order.TransitionTable,
	notifier ports.NotificationSink,
	logger *slog.Logger,
	opts ...DispatcherOption,
) *AutoActionDispatcher {
	d := &AutoActionDispatcher{
		table:    table,
		notifier: notifier,
		logger:   logger.With("component", "auto_action_dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch fires the auto-action of newStatus for o and reports whether o was
// modified. Failures and panics inside an action are logged and swallowed.
func (d *AutoActionDispatcher) Dispatch(ctx context.Context, o *order.Order, newStatus order.Status) (mutated bool) {
	def, ok := d.table.DefinitionOf(newStatus)
	if !ok {
		return false
	}
	action := def.AutoAction()

	defer func() {
		if r := recover(); r != nil {
			d.logger.ErrorContext(ctx, "Auto-action panicked",
				"action", action.String(), "order_id", o.ID().String(), "panic", r)
		}
	}()

	var err error
	switch action {
	case order.AutoActionNone:
		return false
	case order.MaterialCheck:
		err = d.checkMaterials(ctx, o)
	case order.TimeTrackingNudge:
		err = d.nudgeTimeTracking(ctx, o)
	case order.CustomerNotifyNudge:
		d.notifier.Notify(ctx,
			fmt.Sprintf("'%s' is waiting for customer acceptance. Consider contacting the customer.", o.Title()),
			ports.SeverityInfo)
	case order.InvoiceReady:
		o.MarkReadyForInvoice()
		mutated = true
		d.notifier.Notify(ctx,
			fmt.Sprintf("'%s' is completed and ready for invoicing.", o.Title()),
			ports.SeveritySuccess)
	default:
		err = fmt.Errorf("unhandled auto-action %d", int(action))
	}

	if err != nil {
		d.logger.ErrorContext(ctx, "Auto-action failed",
			"action", action.String(), "order_id", o.ID().String(), "error", err)
	}
	return mutated
}

func (d *AutoActionDispatcher) checkMaterials(ctx context.Context, o *order.Order) error {
	if d.materials == nil || !o.HasBillOfMaterials() {
		return nil
	}

	var (
		shortages []string
		lookupErr error
	)
	for _, line := range o.BillOfMaterials() {
		availability, err := d.materials.GetAvailability(ctx, line.MaterialID())
		if err != nil {
			// keep checking the remaining lines
			lookupErr = fmt.Errorf("material %s: %w", line.MaterialID(), err)
			continue
		}
		if line.RequiredQuantity().GreaterThan(availability.QuantityAvailable) {
			shortages = append(shortages, fmt.Sprintf("%s (need %s, have %s)",
				line.Name(), line.RequiredQuantity(), availability.QuantityAvailable))
		}
	}

	if len(shortages) > 0 {
		d.notifier.Notify(ctx,
			fmt.Sprintf("Not enough material in stock for '%s': %s", o.Title(), strings.Join(shortages, ", ")),
			ports.SeverityWarning)
	}
	return lookupErr
}

func (d *AutoActionDispatcher) nudgeTimeTracking(ctx context.Context, o *order.Order) error {
	if d.timeTracking == nil {
		return nil
	}

	active, err := d.timeTracking.HasActiveSession(ctx, o.ID())
	if err != nil {
		return err
	}
	if !active {
		d.notifier.Notify(ctx,
			fmt.Sprintf("'%s' is now in progress. Start time tracking to record your hours.", o.Title()),
			ports.SeverityInfo)
	}
	return nil
}
