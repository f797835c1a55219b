package queries

import (
	"context"
	"maps"
	"slices"

	"workorders/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetStatusCountsQueryHandler aggregates order counts in the database.
type GetStatusCountsQueryHandler struct {
	db    *gorm.DB
	table order.TransitionTable
}

func NewGetStatusCountsQueryHandler(db *gorm.DB, table order.TransitionTable) GetStatusCountsQueryHandler {
	return GetStatusCountsQueryHandler{db: db, table: table}
}

func (h GetStatusCountsQueryHandler) Handle(
	ctx context.Context,
	query GetStatusCountsQuery,
) (GetStatusCountsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetStatusCountsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		GROUP BY status
	`).Rows()
	if err != nil {
		return GetStatusCountsQueryResponse{}, err
	}
	defer rows.Close()

	counts := make(map[order.Status]int)
	for _, s := range h.table.Statuses() {
		counts[s] = 0
	}

	for rows.Next() {
		var raw string
		var n int
		if err = rows.Scan(&raw, &n); err != nil {
			return GetStatusCountsQueryResponse{}, err
		}
		counts[order.NormalizeLegacyStatus(order.Status(raw))] += n
	}

	if err = rows.Err(); err != nil {
		return GetStatusCountsQueryResponse{}, err
	}

	resp := GetStatusCountsQueryResponse{
		Counts: make([]StatusCount, 0, len(counts)),
	}

	ordered := h.table.Statuses()
	for _, s := range slices.Sorted(maps.Keys(counts)) {
		if _, known := h.table.DefinitionOf(s); !known {
			ordered = append(ordered, s)
		}
	}

	for _, s := range ordered {
		resp.Counts = append(resp.Counts, StatusCount{
			Status: s,
			Label:  h.table.Label(s),
			Icon:   h.table.Icon(s),
			Count:  counts[s],
		})
		resp.Total += counts[s]
	}

	return resp, nil
}
