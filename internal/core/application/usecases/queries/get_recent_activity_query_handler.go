package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetRecentActivityQueryHandler reads the activity timeline newest first.
type GetRecentActivityQueryHandler struct {
	db *gorm.DB
}

func NewGetRecentActivityQueryHandler(db *gorm.DB) GetRecentActivityQueryHandler {
	return GetRecentActivityQueryHandler{db: db}
}

func (h GetRecentActivityQueryHandler) Handle(
	ctx context.Context,
	query GetRecentActivityQuery,
) ([]ActivityEntry, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			icon,
			summary,
			recorded_at
		FROM activity_log
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]ActivityEntry, 0, query.Limit())
	for rows.Next() {
		var e ActivityEntry
		if err = rows.Scan(&e.Icon, &e.Summary, &e.RecordedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
