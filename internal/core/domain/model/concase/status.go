package concase

import (
	"fmt"

	"concierge/internal/pkg/errs"
)

// Status represents the lifecycle state of a concierge case.
// It implements a state machine with defined transitions to ensure cases
// follow the correct business workflow.
//
// State transitions:
//
//	INTAKE ──> ASSESSMENT ──> IN_PROGRESS ──┬──> PENDING_EXTERNAL ──┐
//	                               ^        ├──> PENDING_OWNER ─────┤
//	                               │        ├──> ON_HOLD ───────────┤
//	                               │        └──> RESOLVED ──> CLOSED│
//	                               └────────────────(reopen)────────┘
//
// Every non-terminal status may also move to CANCELLED. CLOSED and CANCELLED
// are terminal. Status is a value object that validates state transitions and
// provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Intake is the initial status when a case is first created.
	Intake

	// Assessment indicates the case is being evaluated by the concierge team.
	Assessment

	// InProgress indicates active work on the case.
	InProgress

	// PendingExternal indicates the case is waiting on an external party,
	// typically a vendor or HOA.
	PendingExternal

	// PendingOwner indicates the case is waiting on the property owner.
	PendingOwner

	// OnHold indicates work is paused at the organization's discretion.
	OnHold

	// Resolved indicates the requested work is done; the case may still be
	// reopened if the outcome does not hold.
	Resolved

	// Closed is a terminal state reached from Resolved.
	Closed

	// Cancelled is a terminal state reachable from any non-terminal status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "UNKNOWN",
		Intake:          "INTAKE",
		Assessment:      "ASSESSMENT",
		InProgress:      "IN_PROGRESS",
		PendingExternal: "PENDING_EXTERNAL",
		PendingOwner:    "PENDING_OWNER",
		OnHold:          "ON_HOLD",
		Resolved:        "RESOLVED",
		Closed:          "CLOSED",
		Cancelled:       "CANCELLED",
	}
}

// getTransitions returns the adjacency table of permitted transitions.
// Terminal statuses map to an empty set.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Intake:          {Assessment, Cancelled},
		Assessment:      {InProgress, OnHold, Cancelled},
		InProgress:      {PendingExternal, PendingOwner, OnHold, Resolved, Cancelled},
		PendingExternal: {InProgress, OnHold, Cancelled},
		PendingOwner:    {InProgress, OnHold, Cancelled},
		OnHold:          {InProgress, Cancelled},
		Resolved:        {InProgress, Closed},
		Closed:          {},
		Cancelled:       {},
	}
}

// StatusFromString parses the wire representation of a case status.
// Returns an error for strings outside the enumerated set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid case status", s))
}

// Validate checks that the Status value belongs to the enumerated set.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s == Closed || s == Cancelled
}

// CanTransitionTo reports whether the transition from s to target is
// permitted by the adjacency table. Pure and deterministic; no side effects.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the transition from s to target and returns the new
// status. Returns an error when target is outside the enumerated set or the
// edge is not in the adjacency table; the caller surfaces that as a client
// error.
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
