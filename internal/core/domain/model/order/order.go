package order

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"workorders/internal/core/domain/model/kernel"
	"workorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const (
	minProgressPercent = 0
	maxProgressPercent = 100
)

// Order is the aggregate root for a craftsman's unit of customer work.
//
// Invariants:
//   - status, history and status time totals change only through ChangeStatus
//   - statusReason is set only while the current status requires a reason
//   - history is append-only
//   - closed status totals plus TimeInStatus(current) span createdAt to now
type Order struct {
	id                 kernel.UUID
	title              string
	status             Status
	progressPercent    int
	statusReason       string
	statusTimeTotals   map[Status]time.Duration
	lastStatusChangeAt *time.Time
	history            []StatusChangeEvent
	billOfMaterials    []MaterialLine
	createdAt          time.Time
	version            int64

	isConstructed bool
}

// NewOrder creates a planned order with zero progress and an empty history.
//
// Example:
//
//	line, _ := order.NewMaterialLine("oak-board-20mm", "Oak board 20mm", decimal.NewFromInt(6))
//	o, err := order.NewOrder(kernel.NewUUID(), "Kitchen cabinet", []order.MaterialLine{line}, clock.Now())
func NewOrder(id kernel.UUID, title string, billOfMaterials []MaterialLine, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:           Planned,
		statusTimeTotals: make(map[Status]time.Duration),
		history:          make([]StatusChangeEvent, 0),
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTitle(title),
		o.setBillOfMaterials(billOfMaterials),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrderParams carries the persisted state of an order.
type RestoreOrderParams struct {
	ID                 kernel.UUID
	Title              string
	Status             Status
	ProgressPercent    int
	StatusReason       string
	StatusTimeTotals   map[Status]time.Duration
	LastStatusChangeAt *time.Time
	History            []StatusChangeEvent
	BillOfMaterials    []MaterialLine
	CreatedAt          time.Time
	Version            int64
}

// RestoreOrder rebuilds an order loaded from storage. Legacy status values are
// normalized here; statuses unknown to this release are kept as they are.
func RestoreOrder(p RestoreOrderParams) (*Order, error) {
	o := &Order{
		status:             NormalizeLegacyStatus(p.Status),
		statusReason:       p.StatusReason,
		statusTimeTotals:   make(map[Status]time.Duration, len(p.StatusTimeTotals)),
		lastStatusChangeAt: p.LastStatusChangeAt,
		history:            slices.Clone(p.History),
		version:            p.Version,
		isConstructed:      true,
	}
	if o.history == nil {
		o.history = make([]StatusChangeEvent, 0)
	}
	for status, total := range p.StatusTimeTotals {
		o.statusTimeTotals[NormalizeLegacyStatus(status)] += total
	}

	var statusErr error
	if o.status == "" {
		statusErr = errs.NewValueIsRequiredError("status")
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setTitle(p.Title),
		statusErr,
		o.setProgressPercent(p.ProgressPercent),
		o.setBillOfMaterials(p.BillOfMaterials),
		o.setCreatedAt(p.CreatedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Title() string { return o.title }
func (o *Order) Status() Status { return o.status }
func (o *Order) ProgressPercent() int { return o.progressPercent }
func (o *Order) StatusReason() string { return o.statusReason }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) Version() int64 { return o.version }
func (o *Order) HistoryLen() int { return len(o.history) }
func (o *Order) HasBillOfMaterials() bool {
	return len(o.billOfMaterials) > 0
}

// LastStatusChangeAt returns the start of the open status interval; false before the first transition.
func (o *Order) LastStatusChangeAt() (time.Time, bool) {
	if o.lastStatusChangeAt == nil {
		return time.Time{}, false
	}
	return *o.lastStatusChangeAt, true
}

// StatusTimeTotals returns a copy of the closed-interval totals per status.
func (o *Order) StatusTimeTotals() map[Status]time.Duration {
	return maps.Clone(o.statusTimeTotals)
}

// History returns a copy of the audit trail, oldest first.
func (o *Order) History() []StatusChangeEvent {
	return slices.Clone(o.history)
}

// BillOfMaterials returns a copy of the material lines.
func (o *Order) BillOfMaterials() []MaterialLine {
	return slices.Clone(o.billOfMaterials)
}

// ChangeStatus validates and applies a transition at now:
// it closes the running duration interval, appends an audit entry, then sets
// the status and reason. Nothing is mutated when validation fails.
//
// Example:
//
//	event, err := o.ChangeStatus(table, order.Cancelled, "", now)
//	if order.IsReasonRequired(err) {
//	    // ask for a reason and call again
//	}
func (o *Order) ChangeStatus(table TransitionTable, target Status, reason string, now time.Time) (StatusChangeEvent, error) {
	if err := target.Validate(); err != nil {
		return StatusChangeEvent{}, err
	}

	reason = strings.TrimSpace(reason)
	if err := ValidateTransition(table, o.status, target, reason != ""); err != nil {
		return StatusChangeEvent{}, err
	}

	from := o.status
	o.closeInterval(now)

	event := newStatusChangeEvent(table, from, target, reason, now)
	o.appendHistory(event)

	o.status = target
	o.statusReason = ""
	if def, ok := table.DefinitionOf(target); ok && def.RequiresReason() {
		o.statusReason = reason
	}

	return event, nil
}

// MarkReadyForInvoice sets progress to 100 percent.
func (o *Order) MarkReadyForInvoice() {
	o.progressPercent = maxProgressPercent
}

// AdvanceVersion is called by repositories after a successful optimistic update.
func (o *Order) AdvanceVersion() {
	o.version++
}

// StatusSnapshot captures everything ChangeStatus and the auto-actions may touch,
// so a failed persist can be undone in memory.
type StatusSnapshot struct {
	status             Status
	progressPercent    int
	statusReason       string
	statusTimeTotals   map[Status]time.Duration
	lastStatusChangeAt *time.Time
	historyLen         int
	version            int64
}

// Snapshot records the mutable lifecycle state.
func (o *Order) Snapshot() StatusSnapshot {
	var last *time.Time
	if o.lastStatusChangeAt != nil {
		t := *o.lastStatusChangeAt
		last = &t
	}
	return StatusSnapshot{
		status:             o.status,
		progressPercent:    o.progressPercent,
		statusReason:       o.statusReason,
		statusTimeTotals:   maps.Clone(o.statusTimeTotals),
		lastStatusChangeAt: last,
		historyLen:         len(o.history),
		version:            o.version,
	}
}

// RestoreSnapshot undoes lifecycle changes made after s was taken.
func (o *Order) RestoreSnapshot(s StatusSnapshot) {
	o.status = s.status
	o.progressPercent = s.progressPercent
	o.statusReason = s.statusReason
	o.statusTimeTotals = maps.Clone(s.statusTimeTotals)
	o.lastStatusChangeAt = s.lastStatusChangeAt
	o.version = s.version
	if s.historyLen <= len(o.history) {
		o.history = o.history[:s.historyLen:s.historyLen]
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return errs.NewValueIsRequiredError("title")
	}
	o.title = title
	return nil
}

func (o *Order) setProgressPercent(progress int) error {
	if progress < minProgressPercent || progress > maxProgressPercent {
		return errs.NewValueIsOutOfRangeError("progressPercent", progress, minProgressPercent, maxProgressPercent)
	}
	o.progressPercent = progress
	return nil
}

func (o *Order) setBillOfMaterials(lines []MaterialLine) error {
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("bill of materials line %d: %w", i, err)
		}
	}
	o.billOfMaterials = slices.Clone(lines)
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
