package order

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyInStatus   = errors.New("order is already in the requested status")
	ErrInvalidTransition = errors.New("status transition is not allowed")

	// ErrReasonRequired is not terminal: the caller should ask for a reason and retry.
	ErrReasonRequired = errors.New("status transition requires a reason")
)

// TransitionError describes a rejected status change. It unwraps to one of
// ErrAlreadyInStatus, ErrInvalidTransition or ErrReasonRequired.
type TransitionError struct {
	Kind    error
	From    Status
	To      Status
	Message string
}

func (e *TransitionError) Error() string {
	return e.Message
}

func (e *TransitionError) Unwrap() error {
	return e.Kind
}

// IsReasonRequired reports whether err asks the caller to supply a reason and retry.
func IsReasonRequired(err error) bool {
	return errors.Is(err, ErrReasonRequired)
}

// ValidateTransition decides whether an order in current may move to target.
// Rules apply in order:
//  1. target equal to current is rejected with ErrAlreadyInStatus;
//  2. a current status missing from the table allows any target;
//  3. a target outside the allowed set is rejected with ErrInvalidTransition;
//  4. a reason-requiring target without a reason is rejected with ErrReasonRequired.
func ValidateTransition(table TransitionTable, current, target Status, reasonProvided bool) error {
	if target == current {
		return &TransitionError{
			Kind:    ErrAlreadyInStatus,
			From:    current,
			To:      target,
			Message: fmt.Sprintf("order is already '%s'", table.Label(current)),
		}
	}

	currentDef, ok := table.DefinitionOf(current)
	if !ok {
		return nil
	}

	if !currentDef.Allows(target) {
		return &TransitionError{
			Kind: ErrInvalidTransition,
			From: current,
			To:   target,
			Message: fmt.Sprintf("'%s' cannot transition directly to '%s'",
				currentDef.Label(), table.Label(target)),
		}
	}

	if targetDef, found := table.DefinitionOf(target); found && targetDef.RequiresReason() && !reasonProvided {
		return &TransitionError{
			Kind:    ErrReasonRequired,
			From:    current,
			To:      target,
			Message: fmt.Sprintf("a reason is required to move to '%s'", targetDef.Label()),
		}
	}

	return nil
}
