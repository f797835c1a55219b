package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// MaterialAvailability is the stock an inventory system reports for one material.
type MaterialAvailability struct {
	MaterialID        string
	QuantityAvailable decimal.Decimal
}

// MaterialAvailabilitySource answers stock queries for bill-of-materials lines.
// It is optional; the material check is skipped when none is configured.
type MaterialAvailabilitySource interface {
	GetAvailability(ctx context.Context, materialID string) (MaterialAvailability, error)
}
