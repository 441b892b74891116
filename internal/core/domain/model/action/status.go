package action

import (
	"fmt"

	"concierge/internal/pkg/errs"
)

// Status represents the lifecycle state of an action.
//
// State transitions:
//
//	PLANNED ──> IN_PROGRESS ──┬──> COMPLETED
//	                ^         └──> BLOCKED
//	                └──────────────────┘
//
// Every non-terminal status may also move to CANCELLED. COMPLETED and
// CANCELLED are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Planned is the initial status when an action is created.
	Planned

	// InProgress indicates the action is being worked.
	InProgress

	// Blocked indicates the action cannot proceed until something else
	// resolves; it returns to InProgress when unblocked.
	Blocked

	// Completed is a terminal state for finished actions.
	Completed

	// Cancelled is a terminal state for abandoned actions.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Planned:    "PLANNED",
		InProgress: "IN_PROGRESS",
		Blocked:    "BLOCKED",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Planned:    {InProgress, Cancelled},
		InProgress: {Blocked, Completed, Cancelled},
		Blocked:    {InProgress, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses the wire representation of an action status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid action status", s))
}

// Validate checks that the Status value belongs to the enumerated set.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition from s to target is permitted.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition from s to target and returns the new
// status, or an error the caller surfaces as a client error.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("transition %s -> %s is not allowed", s.String(), target.String()),
		)
	}

	return target, nil
}
