package queries

import (
	"errors"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery requests the audit trail and dwell times of one order.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// HistoryEntry is one audit record as it was written.
type HistoryEntry struct {
	OccurredAt  time.Time
	Action      string
	From        order.Status
	To          order.Status
	Description string
	Reason      string
}

// StatusDuration is the accumulated time spent in one status.
type StatusDuration struct {
	Status   order.Status
	Label    string
	Duration time.Duration
}

// GetOrderHistoryQueryResponse carries entries oldest first. TimeInStatus
// includes the still-open interval of the current status up to the query time.
type GetOrderHistoryQueryResponse struct {
	OrderID      kernel.UUID
	Title        string
	Status       order.Status
	StatusReason string
	Entries      []HistoryEntry
	TimeInStatus []StatusDuration
}
