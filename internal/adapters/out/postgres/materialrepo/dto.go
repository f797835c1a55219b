// Package materialrepo reads inventory stock levels. Stock is maintained by the
// inventory module; this package never writes it.
package materialrepo

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaterialStockDTO is one inventory item with its current quantity on hand.
type MaterialStockDTO struct {
	MaterialID        string          `gorm:"type:varchar(128);primaryKey"`
	Name              string          `gorm:"not null"`
	QuantityAvailable decimal.Decimal `gorm:"type:numeric(18,4);not null"`
	UpdatedAt         time.Time
}

func (MaterialStockDTO) TableName() string {
	return "material_stock"
}
