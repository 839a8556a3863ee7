package order

import (
	"fmt"

	"littlelemon/internal/pkg/errs"
)

// Status is the delivery state of an order.
//
//	Pending ──> Delivered
//
// Stored and exchanged as a boolean (false = pending, true = delivered).
// Setting a status to the value it already holds is a no-op; a delivered
// order never returns to pending.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Delivered
)

// StatusFromDelivered maps the boolean wire and storage form to a Status.
func StatusFromDelivered(delivered bool) Status {
	if delivered {
		return Delivered
	}
	return Pending
}

// IsDelivered returns the boolean form of the status.
func (s Status) IsDelivered() bool {
	return s == Delivered
}

func (s Status) Validate() error {
	if s != Pending && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Delivered:
		return "Delivered"
	default:
		return "Unknown"
	}
}

// TransitionTo validates moving from s to next. changed is false when next
// equals s.
func (s Status) TransitionTo(next Status) (changed bool, err error) {
	if err = next.Validate(); err != nil {
		return false, err
	}
	if err = s.Validate(); err != nil {
		return false, err
	}
	if s == next {
		return false, nil
	}
	if s == Delivered && next == Pending {
		return false, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order cannot go back to %s", s, next),
		)
	}
	return true, nil
}
