package activityrepo

import (
	"context"
	"strings"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActivityLog implements ports.ActivityLogSink.
type GormActivityLog struct {
	db    *gorm.DB
	clock kernel.Clock
}

func NewGormActivityLog(db *gorm.DB, clock kernel.Clock) *GormActivityLog {
	return &GormActivityLog{db: db, clock: clock}
}

// Record appends a timeline entry stamped with the current time.
func (l *GormActivityLog) Record(ctx context.Context, icon, summary string) error {
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return errs.NewValueIsRequiredError("summary")
	}

	return l.db.WithContext(ctx).Create(&ActivityEntryDTO{
		Icon:       icon,
		Summary:    summary,
		RecordedAt: l.clock.Now(),
	}).Error
}
