// Package queries contains read-only operations over work orders. Handlers
// read the database directly and never load full aggregates.
package queries

import (
	"errors"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/guard"
)

var (
	ErrGetAllowedNextStatusesQueryIsNotConstructed = errors.New(
		"GetAllowedNextStatusesQuery must be created via NewGetAllowedNextStatusesQuery constructor",
	)
)

// GetAllowedNextStatusesQuery asks which statuses an order may move to next.
//
// Example:
//
//	query, err := NewGetAllowedNextStatusesQuery(orderID)
//	resp, err := handler.Handle(ctx, query)
//	for _, option := range resp.Options {
//	    fmt.Println(option.Icon, option.Label)
//	}
type GetAllowedNextStatusesQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAllowedNextStatusesQuery(orderID kernel.UUID) (GetAllowedNextStatusesQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetAllowedNextStatusesQuery{}, err
	}

	return GetAllowedNextStatusesQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllowedNextStatusesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllowedNextStatusesQueryIsNotConstructed)
}

func (q GetAllowedNextStatusesQuery) OrderID() kernel.UUID {
	return q.orderID
}

// StatusOption is one selectable target status.
type StatusOption struct {
	Status         order.Status
	Label          string
	Icon           string
	RequiresReason bool
}

// GetAllowedNextStatusesQueryResponse lists targets in rank order.
type GetAllowedNextStatusesQueryResponse struct {
	OrderID kernel.UUID
	Current order.Status
	Options []StatusOption
}
