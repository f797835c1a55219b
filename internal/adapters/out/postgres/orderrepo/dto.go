// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status time totals are kept as a JSON object of milliseconds keyed by status.
type OrderDTO struct {
	ID                 uuid.UUID                            `gorm:"type:uuid;primaryKey"`
	Title              string                               `gorm:"not null"`
	Status             string                               `gorm:"type:varchar(64);index;not null"`
	ProgressPercent    int                                  `gorm:"type:smallint;not null"`
	StatusReason       *string                              `gorm:"type:text"`
	StatusTimeTotals   datatypes.JSONType[map[string]int64] `gorm:"not null"`
	LastStatusChangeAt *time.Time
	CreatedAt          time.Time `gorm:"not null;index"`
	Version            int64     `gorm:"not null"`

	Events        []StatusChangeEventDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	MaterialLines []MaterialLineDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// StatusChangeEventDTO is one audit history row. Rows are only ever inserted.
type StatusChangeEventDTO struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_order_status_events_sequence,priority:1"`
	Sequence    int       `gorm:"not null;uniqueIndex:idx_order_status_events_sequence,priority:2"`
	Action      string    `gorm:"type:varchar(32);not null"`
	FromStatus  string    `gorm:"type:varchar(64);not null"`
	ToStatus    string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"not null"`
	Reason      *string   `gorm:"type:text"`
	OccurredAt  time.Time `gorm:"not null;index"`
}

func (StatusChangeEventDTO) TableName() string {
	return "order_status_events"
}

// MaterialLineDTO is one bill-of-materials row.
type MaterialLineDTO struct {
	ID               uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position         int             `gorm:"not null"`
	MaterialID       string          `gorm:"type:varchar(128);not null"`
	Name             string          `gorm:"not null"`
	RequiredQuantity decimal.Decimal `gorm:"type:numeric(18,4);not null"`
}

func (MaterialLineDTO) TableName() string {
	return "order_material_lines"
}
