package queries

import (
	"context"
	"database/sql"
	"errors"
	"maps"
	"slices"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/errs"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads the audit trail of an order.
type GetOrderHistoryQueryHandler struct {
	db    *gorm.DB
	table order.TransitionTable
	clock kernel.Clock
}

func NewGetOrderHistoryQueryHandler(
	db *gorm.DB,
	table order.TransitionTable,
	clock kernel.Clock,
) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db, table: table, clock: clock}
}

func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) (GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	var (
		title, status string
		reason        sql.NullString
		totals        datatypes.JSONType[map[string]int64]
		lastChange    sql.NullTime
		createdAt     time.Time
	)
	err := db.Raw(`
		SELECT
			title,
			status,
			status_reason,
			status_time_totals,
			last_status_change_at,
			created_at
		FROM orders
		WHERE id = ?
	`, id).Row().Scan(&title, &status, &reason, &totals, &lastChange, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderHistoryQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	current := order.NormalizeLegacyStatus(order.Status(status))

	entries, err := h.entries(db, id)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	durations := make(map[order.Status]time.Duration)
	for s, ms := range totals.Data() {
		durations[order.NormalizeLegacyStatus(order.Status(s))] += time.Duration(ms) * time.Millisecond
	}

	openSince := createdAt
	if lastChange.Valid {
		openSince = lastChange.Time
	}
	durations[current] += max(0, h.clock.Now().Sub(openSince))

	return GetOrderHistoryQueryResponse{
		OrderID:      query.OrderID(),
		Title:        title,
		Status:       current,
		StatusReason: reason.String,
		Entries:      entries,
		TimeInStatus: h.rankDurations(durations),
	}, nil
}

func (h GetOrderHistoryQueryHandler) entries(db *gorm.DB, orderID any) ([]HistoryEntry, error) {
	rows, err := db.Raw(`
		SELECT
			occurred_at,
			action,
			from_status,
			to_status,
			description,
			reason
		FROM order_status_events
		WHERE order_id = ?
		ORDER BY sequence
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]HistoryEntry, 0)
	for rows.Next() {
		var e HistoryEntry
		var from, to string
		var reason sql.NullString
		if err = rows.Scan(&e.OccurredAt, &e.Action, &from, &to, &e.Description, &reason); err != nil {
			return nil, err
		}
		e.From = order.NormalizeLegacyStatus(order.Status(from))
		e.To = order.NormalizeLegacyStatus(order.Status(to))
		e.Reason = reason.String
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (h GetOrderHistoryQueryHandler) rankDurations(durations map[order.Status]time.Duration) []StatusDuration {
	ordered := make([]order.Status, 0, len(durations))
	for _, s := range h.table.Statuses() {
		if _, ok := durations[s]; ok {
			ordered = append(ordered, s)
		}
	}
	for _, s := range slices.Sorted(maps.Keys(durations)) {
		if _, known := h.table.DefinitionOf(s); !known {
			ordered = append(ordered, s)
		}
	}

	result := make([]StatusDuration, 0, len(ordered))
	for _, s := range ordered {
		result = append(result, StatusDuration{
			Status:   s,
			Label:    h.table.Label(s),
			Duration: durations[s],
		})
	}
	return result
}
