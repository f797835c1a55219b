package timetrackingrepo

import (
	"context"

	"workorders/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormTimeTrackingSource implements ports.TimeTrackingSource.
type GormTimeTrackingSource struct {
	db *gorm.DB
}

func NewGormTimeTrackingSource(db *gorm.DB) *GormTimeTrackingSource {
	return &GormTimeTrackingSource{db: db}
}

// HasActiveSession reports whether the order has a session without an end time.
func (s *GormTimeTrackingSource) HasActiveSession(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := s.db.WithContext(ctx).
		Model(&TimeSessionDTO{}).
		Where("order_id = ? AND ended_at IS NULL", orderID.Bytes()).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
