package order

import (
	"errors"
	"fmt"
	"slices"

	"workorders/internal/pkg/errs"
)

var (
	ErrDuplicateStatusDefinition = errors.New("status is defined more than once")
	ErrSelfTransition            = errors.New("status cannot list itself as a target")
	ErrUndefinedTarget           = errors.New("target status has no definition")
)

// StatusDefinition describes how a status is presented and where it may lead.
// Rank only orders statuses for "how far along" displays; it never decides legality.
type StatusDefinition struct {
	status         Status
	label          string
	icon           string
	rank           int
	targets        []Status
	requiresReason bool
	autoAction     AutoAction
}

// NewStatusDefinition builds a definition. Targets are copied; the caller's slice may be reused.
func NewStatusDefinition(
	status Status,
	label, icon string,
	rank int,
	targets []Status,
	requiresReason bool,
	autoAction AutoAction,
) (StatusDefinition, error) {
	if err := status.Validate(); err != nil {
		return StatusDefinition{}, err
	}
	if label == "" {
		return StatusDefinition{}, errs.NewValueIsRequiredError("label")
	}
	if slices.Contains(targets, status) {
		return StatusDefinition{}, fmt.Errorf("%w: %s", ErrSelfTransition, status)
	}

	return StatusDefinition{
		status:         status,
		label:          label,
		icon:           icon,
		rank:           rank,
		targets:        slices.Clone(targets),
		requiresReason: requiresReason,
		autoAction:     autoAction,
	}, nil
}

func (d StatusDefinition) Status() Status { return d.status }
func (d StatusDefinition) Label() string { return d.label }
func (d StatusDefinition) Icon() string { return d.icon }
func (d StatusDefinition) Rank() int { return d.rank }
func (d StatusDefinition) RequiresReason() bool { return d.requiresReason }
func (d StatusDefinition) AutoAction() AutoAction { return d.autoAction }

// AllowedTargets returns a copy of the statuses reachable in one step.
func (d StatusDefinition) AllowedTargets() []Status {
	return slices.Clone(d.targets)
}

// Allows reports whether target is reachable in one step.
func (d StatusDefinition) Allows(target Status) bool {
	return slices.Contains(d.targets, target)
}

// TransitionTable is the immutable status configuration injected into the
// validator and the command handlers.
type TransitionTable struct {
	definitions map[Status]StatusDefinition
	ordered     []Status
}

// NewTransitionTable indexes the definitions and checks the graph is closed:
// every target must itself be defined.
func NewTransitionTable(definitions ...StatusDefinition) (TransitionTable, error) {
	table := TransitionTable{
		definitions: make(map[Status]StatusDefinition, len(definitions)),
		ordered:     make([]Status, 0, len(definitions)),
	}

	for _, def := range definitions {
		if _, exists := table.definitions[def.status]; exists {
			return TransitionTable{}, fmt.Errorf("%w: %s", ErrDuplicateStatusDefinition, def.status)
		}
		table.definitions[def.status] = def
		table.ordered = append(table.ordered, def.status)
	}

	for _, status := range table.ordered {
		def := table.definitions[status]
		for _, target := range def.targets {
			if _, ok := table.definitions[target]; !ok {
				return TransitionTable{}, fmt.Errorf("%w: %s -> %s", ErrUndefinedTarget, def.status, target)
			}
		}
		def.targets = slices.Clone(def.targets)
		slices.SortStableFunc(def.targets, table.compareRank)
		table.definitions[status] = def
	}
	slices.SortStableFunc(table.ordered, table.compareRank)

	return table, nil
}

func (t TransitionTable) compareRank(a, b Status) int {
	return t.definitions[a].rank - t.definitions[b].rank
}

// DefinitionOf returns the definition of status, or false when it is not configured.
func (t TransitionTable) DefinitionOf(status Status) (StatusDefinition, bool) {
	def, ok := t.definitions[status]
	return def, ok
}

// AllowedTargets returns the rank-ordered targets of status; empty for unknown statuses.
func (t TransitionTable) AllowedTargets(status Status) []Status {
	def, ok := t.definitions[status]
	if !ok {
		return []Status{}
	}
	return def.AllowedTargets()
}

// Statuses returns every configured status in rank order.
func (t TransitionTable) Statuses() []Status {
	return slices.Clone(t.ordered)
}

// Label returns the display label, falling back to the raw key for unknown statuses.
func (t TransitionTable) Label(status Status) string {
	if def, ok := t.definitions[status]; ok {
		return def.label
	}
	return string(status)
}

// Icon returns the display icon or an empty string for unknown statuses.
func (t TransitionTable) Icon(status Status) string {
	return t.definitions[status].icon
}

// DefaultTransitionTable returns the workshop lifecycle.
func DefaultTransitionTable() TransitionTable {
	return MustNewTransitionTable(
		mustDefinition(Planned, "Planned", "📋", 0,
			[]Status{MaterialOrdered, InProgress, Paused, Cancelled}, false, AutoActionNone),
		mustDefinition(MaterialOrdered, "Material Ordered", "📦", 1,
			[]Status{InProgress, Paused, Cancelled}, false, MaterialCheck),
		mustDefinition(InProgress, "In Progress", "🔨", 2,
			[]Status{QualityCheck, CustomerAcceptancePending, Paused, Cancelled}, false, TimeTrackingNudge),
		mustDefinition(QualityCheck, "Quality Check", "🔍", 3,
			[]Status{InProgress, CustomerAcceptancePending, Paused}, false, AutoActionNone),
		mustDefinition(CustomerAcceptancePending, "Pending Customer Acceptance", "✍️", 4,
			[]Status{Completed, InProgress, Paused}, false, CustomerNotifyNudge),
		mustDefinition(Completed, "Completed", "✅", 5,
			nil, false, InvoiceReady),
		mustDefinition(Paused, "Paused", "⏸️", 6,
			[]Status{Planned, MaterialOrdered, InProgress, Cancelled}, true, AutoActionNone),
		mustDefinition(Cancelled, "Cancelled", "❌", 7,
			[]Status{Planned}, true, AutoActionNone),
	)
}

// MustNewTransitionTable is NewTransitionTable for static configuration; it panics on error.
func MustNewTransitionTable(definitions ...StatusDefinition) TransitionTable {
	table, err := NewTransitionTable(definitions...)
	if err != nil {
		panic(err)
	}
	return table
}

func mustDefinition(
	status Status,
	label, icon string,
	rank int,
	targets []Status,
	requiresReason bool,
	autoAction AutoAction,
) StatusDefinition {
	def, err := NewStatusDefinition(status, label, icon, rank, targets, requiresReason, autoAction)
	if err != nil {
		panic(err)
	}
	return def
}
