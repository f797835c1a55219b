package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/core/domain/services"
	"workorders/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) Notify(ctx context.Context, message string, severity ports.Severity) {
	m.Called(ctx, message, severity)
}

type MockMaterialAvailabilitySource struct{ mock.Mock }

func (m *MockMaterialAvailabilitySource) GetAvailability(
	ctx context.Context,
	materialID string,
) (ports.MaterialAvailability, error) {
	args := m.Called(ctx, materialID)
	return args.Get(0).(ports.MaterialAvailability), args.Error(1)
}

type MockTimeTrackingSource struct{ mock.Mock }

func (m *MockTimeTrackingSource) HasActiveSession(ctx context.Context, orderID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

var createdAt = time.Date(2025, 6, 2, 7, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newOrderWithMaterials(t *testing.T, lines ...order.MaterialLine) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Garden bench", lines, createdAt)
	require.NoError(t, err)
	return o
}

func materialLine(t *testing.T, id, name string, qty int64) order.MaterialLine {
	t.Helper()
	line, err := order.NewMaterialLine(id, name, decimal.NewFromInt(qty))
	require.NoError(t, err)
	return line
}

func availability(id string, qty int64) ports.MaterialAvailability {
	return ports.MaterialAvailability{MaterialID: id, QuantityAvailable: decimal.NewFromInt(qty)}
}

func TestAutoActionDispatcher_MaterialCheck(t *testing.T) {
	table := order.DefaultTransitionTable()

	t.Run("should warn about lines that exceed stock", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithMaterials(t,
			materialLine(t, "larch-28", "Larch plank", 8),
			materialLine(t, "screws-5x60", "Screws", 40),
		)
		materials := new(MockMaterialAvailabilitySource)
		materials.On("GetAvailability", ctx, "larch-28").Return(availability("larch-28", 3), nil).Once()
		materials.On("GetAvailability", ctx, "screws-5x60").Return(availability("screws-5x60", 200), nil).Once()
		notifier := new(MockNotificationSink)
		notifier.On("Notify", ctx,
			"Not enough material in stock for 'Garden bench': Larch plank (need 8, have 3)",
			ports.SeverityWarning).Once()

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger(),
			services.WithMaterialAvailability(materials))
		mutated := d.Dispatch(ctx, o, order.MaterialOrdered)

		assert.False(t, mutated)
		materials.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should stay silent when everything is in stock", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithMaterials(t, materialLine(t, "larch-28", "Larch plank", 8))
		materials := new(MockMaterialAvailabilitySource)
		materials.On("GetAvailability", ctx, "larch-28").Return(availability("larch-28", 8), nil).Once()
		notifier := new(MockNotificationSink)

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger(),
			services.WithMaterialAvailability(materials))
		d.Dispatch(ctx, o, order.MaterialOrdered)

		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should skip without a bill of materials", func(t *testing.T) {
		o := newOrderWithMaterials(t)
		materials := new(MockMaterialAvailabilitySource)
		notifier := new(MockNotificationSink)

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger(),
			services.WithMaterialAvailability(materials))
		d.Dispatch(t.Context(), o, order.MaterialOrdered)

		materials.AssertNotCalled(t, "GetAvailability", mock.Anything, mock.Anything)
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should skip without an availability source", func(t *testing.T) {
		o := newOrderWithMaterials(t, materialLine(t, "larch-28", "Larch plank", 8))
		notifier := new(MockNotificationSink)

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger())
		d.Dispatch(t.Context(), o, order.MaterialOrdered)

		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should keep checking after a failed lookup", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithMaterials(t,
			materialLine(t, "larch-28", "Larch plank", 8),
			materialLine(t, "oil", "Hard wax oil", 2),
		)
		materials := new(MockMaterialAvailabilitySource)
		materials.On("GetAvailability", ctx, "larch-28").
			Return(ports.MaterialAvailability{}, errors.New("inventory offline")).Once()
		materials.On("GetAvailability", ctx, "oil").Return(availability("oil", 1), nil).Once()
		notifier := new(MockNotificationSink)
		notifier.On("Notify", ctx,
			"Not enough material in stock for 'Garden bench': Hard wax oil (need 2, have 1)",
			ports.SeverityWarning).Once()

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger(),
			services.WithMaterialAvailability(materials))

		assert.NotPanics(t, func() { d.Dispatch(ctx, o, order.MaterialOrdered) })
		materials.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})
}

func TestAutoActionDispatcher_TimeTrackingNudge(t *testing.T) {
	table := order.DefaultTransitionTable()

	t.Run("should nudge when no session is running", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithMaterials(t)
		tracking := new(MockTimeTrackingSource)
		tracking.On("HasActiveSession", ctx, o.ID()).Return(false, nil).Once()
		notifier := new(MockNotificationSink)
		notifier.On("Notify", ctx,
			"'Garden bench' is now in progress. Start time tracking to record your hours.",
			ports.SeverityInfo).Once()

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger(), services.WithTimeTracking(tracking))
		d.Dispatch(ctx, o, order.InProgress)

		tracking.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("should stay silent while a session is running", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithMaterials(t)
		tracking := new(MockTimeTrackingSource)
		tracking.On("HasActiveSession", ctx, o.ID()).Return(true, nil).Once()
		notifier := new(MockNotificationSink)

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger(), services.WithTimeTracking(tracking))
		d.Dispatch(ctx, o, order.InProgress)

		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should swallow lookup errors", func(t *testing.T) {
		ctx := t.Context()
		o := newOrderWithMaterials(t)
		tracking := new(MockTimeTrackingSource)
		tracking.On("HasActiveSession", ctx, o.ID()).Return(false, errors.New("timeout")).Once()
		notifier := new(MockNotificationSink)

		d := services.NewAutoActionDispatcher(table, notifier, discardLogger(), services.WithTimeTracking(tracking))

		assert.False(t, d.Dispatch(ctx, o, order.InProgress))
		notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAutoActionDispatcher_CustomerNotifyNudge(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithMaterials(t)
	notifier := new(MockNotificationSink)
	notifier.On("Notify", ctx,
		"'Garden bench' is waiting for customer acceptance. Consider contacting the customer.",
		ports.SeverityInfo).Once()

	d := services.NewAutoActionDispatcher(order.DefaultTransitionTable(), notifier, discardLogger())

	assert.False(t, d.Dispatch(ctx, o, order.CustomerAcceptancePending))
	notifier.AssertExpectations(t)
}

func TestAutoActionDispatcher_InvoiceReady(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithMaterials(t)
	notifier := new(MockNotificationSink)
	notifier.On("Notify", ctx, "'Garden bench' is completed and ready for invoicing.", ports.SeveritySuccess).Once()

	d := services.NewAutoActionDispatcher(order.DefaultTransitionTable(), notifier, discardLogger())

	assert.True(t, d.Dispatch(ctx, o, order.Completed))
	assert.Equal(t, 100, o.ProgressPercent())
	notifier.AssertExpectations(t)
}

func TestAutoActionDispatcher_NoAction(t *testing.T) {
	notifier := new(MockNotificationSink)
	d := services.NewAutoActionDispatcher(order.DefaultTransitionTable(), notifier, discardLogger())
	o := newOrderWithMaterials(t)

	for _, status := range []order.Status{order.Planned, order.QualityCheck, order.Paused, order.Cancelled, "archived"} {
		assert.False(t, d.Dispatch(t.Context(), o, status))
	}
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestAutoActionDispatcher_RecoversFromPanics(t *testing.T) {
	ctx := t.Context()
	o := newOrderWithMaterials(t)
	notifier := new(MockNotificationSink)
	notifier.On("Notify", ctx, mock.Anything, ports.SeverityInfo).Panic("sink exploded").Once()

	d := services.NewAutoActionDispatcher(order.DefaultTransitionTable(), notifier, discardLogger())

	assert.NotPanics(t, func() {
		assert.False(t, d.Dispatch(ctx, o, order.CustomerAcceptancePending))
	})
}
