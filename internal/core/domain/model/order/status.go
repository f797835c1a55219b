package order

import (
	"fmt"
	"strings"

	"workorders/internal/pkg/errs"
)

// Status is the lifecycle stage of a work order.
//
// Lifecycle (see DefaultTransitionTable for the full edge set):
//
//	planned ──> material-ordered ──> in-progress ──> quality-check
//	   │                                 │                │
//	   │                                 └──> customer-acceptance-pending ──> completed
//	   │
//	   ├──> paused    (reason required, resumes into planned/material-ordered/in-progress)
//	   └──> cancelled (reason required, may only re-open into planned)
//
// Values are persisted by their string key.
type Status string

const (
	Planned                   Status = "planned"
	MaterialOrdered           Status = "material-ordered"
	InProgress                Status = "in-progress"
	QualityCheck              Status = "quality-check"
	CustomerAcceptancePending Status = "customer-acceptance-pending"
	Completed                 Status = "completed"
	Paused                    Status = "paused"
	Cancelled                 Status = "cancelled"
)

// legacyInProgress is the value older records used before in-progress existed.
const legacyInProgress Status = "active"

// AllStatuses lists every business status in lifecycle order.
func AllStatuses() []Status {
	return []Status{
		Planned,
		MaterialOrdered,
		InProgress,
		QualityCheck,
		CustomerAcceptancePending,
		Completed,
		Paused,
		Cancelled,
	}
}

// IsKnown reports whether s is one of the eight business statuses.
func (s Status) IsKnown() bool {
	switch s {
	case Planned, MaterialOrdered, InProgress, QualityCheck,
		CustomerAcceptancePending, Completed, Paused, Cancelled:
		return true
	default:
		return false
	}
}

// Validate returns a ValueIsInvalidError for anything but the eight business statuses.
func (s Status) Validate() error {
	if !s.IsKnown() {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

func (s Status) String() string {
	return string(s)
}

// ParseStatus converts user input into a Status. Surrounding whitespace and
// letter case are ignored; unknown values are rejected.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// NormalizeLegacyStatus maps values written by older releases onto the current
// enum. It is applied when orders are read from storage; unknown values are
// passed through untouched so they can still be transitioned out of.
func NormalizeLegacyStatus(s Status) Status {
	if s == legacyInProgress {
		return InProgress
	}
	return s
}
