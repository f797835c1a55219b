package order

import (
	"fmt"
	"time"
)

// ActionStatusChange tags history entries written by ChangeStatus.
const ActionStatusChange = "status_change"

// StatusChangeEvent is one immutable audit entry. Its description freezes the
// labels in force when it was appended, so renaming a status later does not
// rewrite history.
type StatusChangeEvent struct {
	action      string
	occurredAt  time.Time
	from        Status
	to          Status
	description string
	reason      string
}

// RestoreStatusChangeEvent rebuilds an entry read from storage.
func RestoreStatusChangeEvent(
	action string,
	occurredAt time.Time,
	from, to Status,
	description, reason string,
) StatusChangeEvent {
	return StatusChangeEvent{
		action:      action,
		occurredAt:  occurredAt,
		from:        from,
		to:          to,
		description: description,
		reason:      reason,
	}
}

func newStatusChangeEvent(table TransitionTable, from, to Status, reason string, at time.Time) StatusChangeEvent {
	return StatusChangeEvent{
		action:      ActionStatusChange,
		occurredAt:  at,
		from:        from,
		to:          to,
		description: fmt.Sprintf("%s → %s", table.Label(from), table.Label(to)),
		reason:      reason,
	}
}

func (e StatusChangeEvent) Action() string { return e.action }
func (e StatusChangeEvent) OccurredAt() time.Time { return e.occurredAt }
func (e StatusChangeEvent) From() Status { return e.from }
func (e StatusChangeEvent) To() Status { return e.to }
func (e StatusChangeEvent) Description() string { return e.description }
func (e StatusChangeEvent) Reason() string { return e.reason }

// appendHistory is the only write path to the audit trail. Entries are never
// reordered, edited or removed, and no cap is applied.
func (o *Order) appendHistory(event StatusChangeEvent) {
	o.history = append(o.history, event)
}
