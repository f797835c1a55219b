package queries

import (
	"errors"
	"time"

	"workorders/internal/pkg/errs"
	"workorders/internal/pkg/guard"
)

const (
	DefaultActivityLimit = 20
	MaxActivityLimit     = 200
)

var (
	ErrGetRecentActivityQueryIsNotConstructed = errors.New(
		"GetRecentActivityQuery must be created via NewGetRecentActivityQuery constructor",
	)
)

// GetRecentActivityQuery requests the newest activity timeline entries.
type GetRecentActivityQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentActivityQuery accepts 1..MaxActivityLimit entries.
func NewGetRecentActivityQuery(limit int) (GetRecentActivityQuery, error) {
	if limit < 1 || limit > MaxActivityLimit {
		return GetRecentActivityQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxActivityLimit)
	}

	return GetRecentActivityQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRecentActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentActivityQueryIsNotConstructed)
}

func (q GetRecentActivityQuery) Limit() int {
	return q.limit
}

// ActivityEntry is one line of the activity timeline.
type ActivityEntry struct {
	Icon       string
	Summary    string
	RecordedAt time.Time
}
