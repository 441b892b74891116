package concase_test

import (
	"fmt"
	"testing"

	"concierge/internal/core/domain/model/concase"
	"concierge/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allCaseStatuses() []concase.Status {
	return []concase.Status{
		concase.Intake,
		concase.Assessment,
		concase.InProgress,
		concase.PendingExternal,
		concase.PendingOwner,
		concase.OnHold,
		concase.Resolved,
		concase.Closed,
		concase.Cancelled,
	}
}

// allowedCaseTransitions mirrors the documented adjacency table. Any pair not
// listed here must be rejected.
func allowedCaseTransitions() map[concase.Status][]concase.Status {
	return map[concase.Status][]concase.Status{
		concase.Intake:          {concase.Assessment, concase.Cancelled},
		concase.Assessment:      {concase.InProgress, concase.OnHold, concase.Cancelled},
		concase.InProgress:      {concase.PendingExternal, concase.PendingOwner, concase.OnHold, concase.Resolved, concase.Cancelled},
		concase.PendingExternal: {concase.InProgress, concase.OnHold, concase.Cancelled},
		concase.PendingOwner:    {concase.InProgress, concase.OnHold, concase.Cancelled},
		concase.OnHold:          {concase.InProgress, concase.Cancelled},
		concase.Resolved:        {concase.InProgress, concase.Closed},
		concase.Closed:          {},
		concase.Cancelled:       {},
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("accepts_every_enumerated_status", func(t *testing.T) {
		for _, status := range allCaseStatuses() {
			require.NoError(t, status.Validate(), "status %s", status)
		}
	})

	t.Run("rejects_unknown_and_out_of_range_values", func(t *testing.T) {
		for _, status := range []concase.Status{concase.Unknown, concase.Status(-1), concase.Status(10), concase.Status(100)} {
			err := status.Validate()

			require.Error(t, err, "status value %d", int(status))
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_String(t *testing.T) {
	expected := map[concase.Status]string{
		concase.Intake:          "INTAKE",
		concase.Assessment:      "ASSESSMENT",
		concase.InProgress:      "IN_PROGRESS",
		concase.PendingExternal: "PENDING_EXTERNAL",
		concase.PendingOwner:    "PENDING_OWNER",
		concase.OnHold:          "ON_HOLD",
		concase.Resolved:        "RESOLVED",
		concase.Closed:          "CLOSED",
		concase.Cancelled:       "CANCELLED",
	}

	for status, str := range expected {
		assert.Equal(t, str, status.String())
	}
	assert.Equal(t, "UNKNOWN", concase.Status(42).String())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round_trips_every_status", func(t *testing.T) {
		for _, status := range allCaseStatuses() {
			parsed, err := concase.StatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects_unknown_names", func(t *testing.T) {
		for _, s := range []string{"", "UNKNOWN", "intake", "DONE"} {
			_, err := concase.StatusFromString(s)
			require.Error(t, err, "input %q", s)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("permits_exactly_the_documented_edges", func(t *testing.T) {
		allowed := allowedCaseTransitions()

		for _, from := range allCaseStatuses() {
			permitted := map[concase.Status]bool{}
			for _, to := range allowed[from] {
				permitted[to] = true
			}

			for _, to := range allCaseStatuses() {
				name := fmt.Sprintf("%s_to_%s", from, to)
				t.Run(name, func(t *testing.T) {
					next, err := from.TransitionTo(to)

					if permitted[to] {
						require.NoError(t, err)
						assert.Equal(t, to, next)
					} else {
						require.Error(t, err)
						assert.IsType(t, &errs.ValueIsInvalidError{}, err)
						assert.Equal(t, concase.Unknown, next)
					}
				})
			}
		}
	})

	t.Run("rejects_transition_to_invalid_target", func(t *testing.T) {
		_, err := concase.Intake.TransitionTo(concase.Status(42))
		require.Error(t, err)
	})
}

func TestStatus_Terminal(t *testing.T) {
	t.Run("closed_and_cancelled_have_no_outgoing_edges", func(t *testing.T) {
		for _, terminal := range []concase.Status{concase.Closed, concase.Cancelled} {
			assert.True(t, terminal.IsTerminal())
			for _, to := range allCaseStatuses() {
				assert.False(t, terminal.CanTransitionTo(to), "%s -> %s", terminal, to)
			}
		}
	})

	t.Run("resolved_can_reopen_and_close", func(t *testing.T) {
		assert.True(t, concase.Resolved.CanTransitionTo(concase.InProgress))
		assert.True(t, concase.Resolved.CanTransitionTo(concase.Closed))
		assert.False(t, concase.Resolved.CanTransitionTo(concase.Cancelled))
	})
}
