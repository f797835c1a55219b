package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
)

// TimeTrackingSource reports whether a craftsman is currently clocking time on an order.
type TimeTrackingSource interface {
	HasActiveSession(ctx context.Context, orderID kernel.UUID) (bool, error)
}
