package queries

import (
	"errors"

	"workorders/internal/core/domain/model/order"
	"workorders/internal/pkg/guard"
)

var (
	ErrGetStatusCountsQueryIsNotConstructed = errors.New(
		"GetStatusCountsQuery must be created via NewGetStatusCountsQuery constructor",
	)
)

// GetStatusCountsQuery requests the number of orders per status for dashboards.
type GetStatusCountsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetStatusCountsQuery() GetStatusCountsQuery {
	return GetStatusCountsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusCountsQueryIsNotConstructed)
}

// StatusCount is the number of orders currently in one status.
type StatusCount struct {
	Status order.Status
	Label  string
	Icon   string
	Count  int
}

// GetStatusCountsQueryResponse holds one entry per configured status in rank
// order, zero counts included, followed by any unconfigured statuses found in
// storage sorted by key.
type GetStatusCountsQueryResponse struct {
	Counts []StatusCount
	Total  int
}

// ByStatus returns the counts as a map keyed by status.
func (r GetStatusCountsQueryResponse) ByStatus() map[order.Status]int {
	m := make(map[order.Status]int, len(r.Counts))
	for _, c := range r.Counts {
		m[c.Status] = c.Count
	}
	return m
}
