package queries

import (
	"context"
	"database/sql"
	"errors"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAllowedNextStatusesQueryHandler resolves the targets reachable from an order's current status.
type GetAllowedNextStatusesQueryHandler struct {
	db    *gorm.DB
	table order.TransitionTable
}

func NewGetAllowedNextStatusesQueryHandler(db *gorm.DB, table order.TransitionTable) GetAllowedNextStatusesQueryHandler {
	return GetAllowedNextStatusesQueryHandler{db: db, table: table}
}

// Handle returns the configured targets of the current status. An order whose
// status is not configured may move to any configured status, mirroring the
// permissive rule of the transition validator.
func (h GetAllowedNextStatusesQueryHandler) Handle(
	ctx context.Context,
	query GetAllowedNextStatusesQuery,
) (GetAllowedNextStatusesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAllowedNextStatusesQueryResponse{}, err
	}

	var raw string
	err := h.db.WithContext(ctx).
		Raw(`SELECT status FROM orders WHERE id = ?`, query.OrderID().Bytes()).
		Row().
		Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return GetAllowedNextStatusesQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetAllowedNextStatusesQueryResponse{}, err
	}

	current := order.NormalizeLegacyStatus(order.Status(raw))

	var targets []order.Status
	if _, known := h.table.DefinitionOf(current); known {
		targets = h.table.AllowedTargets(current)
	} else {
		for _, s := range h.table.Statuses() {
			if s != current {
				targets = append(targets, s)
			}
		}
	}

	options := make([]StatusOption, 0, len(targets))
	for _, target := range targets {
		def, _ := h.table.DefinitionOf(target)
		options = append(options, StatusOption{
			Status:         target,
			Label:          def.Label(),
			Icon:           def.Icon(),
			RequiresReason: def.RequiresReason(),
		})
	}

	return GetAllowedNextStatusesQueryResponse{
		OrderID: query.OrderID(),
		Current: current,
		Options: options,
	}, nil
}
