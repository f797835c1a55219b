package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/ports"
)

var ErrPersistenceFailed = errors.New("order status change could not be persisted")

// PersistenceError reports that a validated status change could not be stored.
// The in-memory order has already been put back into its pre-change state.
type PersistenceError struct {
	OrderID kernel.UUID
	Cause   error
}

func NewPersistenceError(orderID kernel.UUID, cause error) *PersistenceError {
	return &PersistenceError{OrderID: orderID, Cause: cause}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: order %s: %v", ErrPersistenceFailed, e.OrderID, e.Cause)
}

func (e *PersistenceError) Unwrap() []error {
	return []error{ErrPersistenceFailed, e.Cause}
}

// AutoActionDispatcher runs the advisory side effect bound to a status.
// It returns true when it changed the order.
type AutoActionDispatcher interface {
	Dispatch(ctx context.Context, o *order.Order, newStatus order.Status) bool
}

// TransitionOrderStatusResult describes a committed transition.
type TransitionOrderStatusResult struct {
	OrderID kernel.UUID
	From    order.Status
	To      order.Status
}

// TransitionOrderStatusCommandHandler is the single entry point for status changes.
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	table      order.TransitionTable
	dispatcher AutoActionDispatcher
	activity   ports.ActivityLogSink
	clock      kernel.Clock
	logger     *slog.Logger
}

func NewTransitionOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	table order.TransitionTable,
	dispatcher AutoActionDispatcher,
	activity ports.ActivityLogSink,
	clock kernel.Clock,
	logger *slog.Logger,
) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
		table:      table,
		dispatcher: dispatcher,
		activity:   activity,
		clock:      clock,
		logger:     logger.With("component", "transition_order_status"),
	}
}

// Handle validates and applies the transition, persists it, then runs the
// auto-action and records an activity entry. Side-effect failures are logged
// and never fail a committed transition.
func (h TransitionOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (TransitionOrderStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionOrderStatusResult{}, err
	}

	o, event, err := h.applyTransition(ctx, cmd)
	if err != nil {
		return TransitionOrderStatusResult{}, err
	}

	if h.dispatcher.Dispatch(ctx, o, event.To()) {
		if err = h.persistFollowUp(ctx, o); err != nil {
			h.logger.ErrorContext(ctx, "failed to persist auto-action changes",
				"order_id", o.ID().String(),
				"status", event.To().String(),
				"error", err,
			)
		}
	}

	summary := fmt.Sprintf("%s: %s", o.Title(), event.Description())
	if err = h.activity.Record(ctx, h.table.Icon(event.To()), summary); err != nil {
		h.logger.ErrorContext(ctx, "failed to record activity",
			"order_id", o.ID().String(),
			"error", err,
		)
	}

	return TransitionOrderStatusResult{
		OrderID: o.ID(),
		From:    event.From(),
		To:      event.To(),
	}, nil
}

func (h TransitionOrderStatusCommandHandler) applyTransition(
	ctx context.Context,
	cmd TransitionOrderStatusCommand,
) (*order.Order, order.StatusChangeEvent, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, order.StatusChangeEvent{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, order.StatusChangeEvent{}, err
	}

	snapshot := o.Snapshot()

	event, err := o.ChangeStatus(h.table, cmd.Target(), cmd.Reason(), h.clock.Now())
	if err != nil {
		return nil, order.StatusChangeEvent{}, err
	}

	if err = repo.Update(ctx, o); err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		o.RestoreSnapshot(snapshot)
		return nil, order.StatusChangeEvent{}, NewPersistenceError(o.ID(), err)
	}

	return o, event, nil
}

func (h TransitionOrderStatusCommandHandler) persistFollowUp(ctx context.Context, o *order.Order) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
