package concase

import (
	"fmt"

	"concierge/internal/pkg/errs"
)

// Priority represents the urgency of a case. It carries no transition rules;
// any valid priority may replace any other.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota
	// PriorityLow marks non-urgent work.
	PriorityLow
	// PriorityNormal is the default priority for new cases.
	PriorityNormal
	// PriorityHigh marks work the organization wants expedited.
	PriorityHigh
	// PriorityUrgent marks work requiring immediate attention.
	PriorityUrgent
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "UNKNOWN",
		PriorityLow:     "LOW",
		PriorityNormal:  "NORMAL",
		PriorityHigh:    "HIGH",
		PriorityUrgent:  "URGENT",
	}
}

// PriorityFromString parses the wire representation of a priority.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getPriorityStrings() {
		if str == s && priority != PriorityUnknown {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", s))
}

// Validate checks that the Priority value belongs to the enumerated set.
func (p Priority) Validate() error {
	if p == PriorityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the wire name of the priority, or "UNKNOWN" for invalid
// values. Implements fmt.Stringer.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
