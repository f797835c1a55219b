// Package ports defines the contracts between the work order core and its
// infrastructure: persistence, inventory, time tracking, notifications and the
// activity timeline.
package ports

import (
	"context"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their audit history and status time totals.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Implementations compare the
	// aggregate's version with the stored one and return errs.VersionIsInvalidError
	// when another writer got there first; on success the aggregate's version advances.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by ID, returning errs.ObjectNotFoundError when absent.
	// Legacy status values are normalized on load.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves every order, oldest first.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
