package order

import (
	"errors"
	"fmt"

	"homebar/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change does not
// correspond to an edge of the order lifecycle graph. Transition methods wrap it,
// so callers can classify rejections with errors.Is.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct workflow behind the bar.
//
// State transitions:
//
//	Queued ──────> InProgress ──────> Ready
//	   │                │
//	   └────> Cancelled <┘
//
// Ready and Cancelled are terminal: no edge leaves them and no edge
// returns to a prior state.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Queued is the initial status when an order is first placed.
	// Orders in this status are waiting for the bartender to take them.
	Queued

	// InProgress indicates the bartender has taken the order and is
	// preparing the drink.
	InProgress

	// Ready indicates the drink has been prepared. This is a terminal
	// state with no further transitions allowed.
	Ready

	// Cancelled indicates the order was cancelled, either by the customer
	// or by the bartender. This is a terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their canonical names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Queued:     "Queued",
		InProgress: "InProgress",
		Ready:      "Ready",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Queued:     "Queued",
		InProgress: "InProgress",
		Ready:      "Ready",
		Cancelled:  "Cancelled",
	}
}

// getStatusLabels returns the localized display labels exchanged at the
// API boundary and rendered into notification messages.
func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no display label
	return map[Status]string{
		Queued:     "В очереди",
		InProgress: "В процессе",
		Ready:      "Готов",
		Cancelled:  "Отменен",
	}
}

// ParseStatusLabel converts a display label back into a Status.
// Only the four localized labels are accepted; any other literal is
// rejected as malformed input.
func ParseStatusLabel(label string) (Status, error) {
	for status, l := range getStatusLabels() {
		if l == label {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", label),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Queued, InProgress, Ready, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical name of the status.
//
// Returns "Queued", "InProgress", "Ready", or "Cancelled" for valid
// statuses and "Unknown" otherwise. Implements fmt.Stringer and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Label returns the localized display label for the status.
// Falls back to the canonical name for values without a label.
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return s.String()
}

// IsTerminal reports whether the status is absorbing: Ready and Cancelled
// admit no further transitions.
func (s Status) IsTerminal() bool {
	return s == Ready || s == Cancelled
}

// ExpectsNotification reports whether an order in this status still expects
// remote interaction and may therefore own a live notification message.
// Only Queued and InProgress orders keep an interactive message alive.
func (s Status) ExpectsNotification() bool {
	return s == Queued || s == InProgress
}

// Take transitions the status to InProgress.
//
// Valid transitions:
//   - Queued -> InProgress (bartender takes the order)
//
// Returns:
//   - (InProgress, nil) on valid transition
//   - (0, error) wrapping ErrInvalidStatusTransition otherwise
func (s Status) Take() (Status, error) {
	if s != Queued {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, InProgress)
	}
	return InProgress, nil
}

// Complete transitions the status to Ready.
//
// Valid transitions:
//   - InProgress -> Ready (drink is on the counter)
//
// Returns:
//   - (Ready, nil) on valid transition
//   - (0, error) wrapping ErrInvalidStatusTransition otherwise
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, Ready)
	}
	return Ready, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Queued -> Cancelled
//   - InProgress -> Cancelled
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) wrapping ErrInvalidStatusTransition otherwise
func (s Status) Cancel() (Status, error) {
	if s != Queued && s != InProgress {
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, Cancelled)
	}
	return Cancelled, nil
}

// TransitionTo validates the edge from the current status to target and
// returns the resulting status. Every status mutation in the system goes
// through this dispatch, so no write can bypass the lifecycle graph.
func (s Status) TransitionTo(target Status) (Status, error) {
	switch target {
	case InProgress:
		return s.Take()
	case Ready:
		return s.Complete()
	case Cancelled:
		return s.Cancel()
	default:
		return 0, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, target)
	}
}
