// Package activityrepo stores the user-facing activity timeline.
package activityrepo

import "time"

// ActivityEntryDTO is one timeline line.
type ActivityEntryDTO struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	Icon       string    `gorm:"type:varchar(16);not null"`
	Summary    string    `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null;index"`
}

func (ActivityEntryDTO) TableName() string {
	return "activity_log"
}
