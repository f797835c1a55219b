package materialrepo

import (
	"context"
	"errors"

	"workorders/internal/core/ports"
	"workorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormMaterialAvailabilitySource implements ports.MaterialAvailabilitySource.
type GormMaterialAvailabilitySource struct {
	db *gorm.DB
}

func NewGormMaterialAvailabilitySource(db *gorm.DB) *GormMaterialAvailabilitySource {
	return &GormMaterialAvailabilitySource{db: db}
}

// GetAvailability returns the stock on hand. A material missing from stock is
// reported with zero availability rather than as an error.
func (s *GormMaterialAvailabilitySource) GetAvailability(
	ctx context.Context,
	materialID string,
) (ports.MaterialAvailability, error) {
	if materialID == "" {
		return ports.MaterialAvailability{}, errs.NewValueIsRequiredError("materialID")
	}

	var dto MaterialStockDTO
	err := s.db.WithContext(ctx).First(&dto, "material_id = ?", materialID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.MaterialAvailability{MaterialID: materialID, QuantityAvailable: decimal.Zero}, nil
	}
	if err != nil {
		return ports.MaterialAvailability{}, err
	}

	return ports.MaterialAvailability{
		MaterialID:        dto.MaterialID,
		QuantityAvailable: dto.QuantityAvailable,
	}, nil
}
