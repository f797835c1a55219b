package order

import "time"

// closeInterval books the time spent in the current status and restarts the clock.
// A clock that went backwards contributes zero, so totals never decrease.
func (o *Order) closeInterval(now time.Time) {
	elapsed := max(0, now.Sub(o.intervalStart()))
	o.statusTimeTotals[o.status] += elapsed
	o.lastStatusChangeAt = &now
}

func (o *Order) intervalStart() time.Time {
	if o.lastStatusChangeAt != nil {
		return *o.lastStatusChangeAt
	}
	return o.createdAt
}

// TimeInStatus returns the accumulated time in status, including the still-open
// interval when status is the current one.
func (o *Order) TimeInStatus(status Status, now time.Time) time.Duration {
	total := o.statusTimeTotals[status]
	if status == o.status {
		total += max(0, now.Sub(o.intervalStart()))
	}
	return total
}
