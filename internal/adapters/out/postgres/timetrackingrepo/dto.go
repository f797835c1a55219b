// Package timetrackingrepo answers whether a time tracking session is running for an order.
package timetrackingrepo

import (
	"time"

	"github.com/google/uuid"
)

// TimeSessionDTO is one recorded stretch of work on an order. An open session has no end.
type TimeSessionDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_time_sessions_open,priority:1"`
	StartedAt time.Time  `gorm:"not null"`
	EndedAt   *time.Time `gorm:"index:idx_time_sessions_open,priority:2"`
}

func (TimeSessionDTO) TableName() string {
	return "time_sessions"
}
