package workorder_test

import (
	"fmt"
	"testing"

	"workorder/internal/core/domain/model/workorder"
	"workorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(workorder.Unknown))
		assert.Equal(t, 1, int(workorder.Open))
		assert.Equal(t, 2, int(workorder.InProgress))
		assert.Equal(t, 3, int(workorder.Completed))
		assert.Equal(t, 4, int(workorder.ReadyForInvoicing))
		assert.Equal(t, 5, int(workorder.Invoiced))
		assert.Equal(t, 6, int(workorder.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []workorder.Status{
			workorder.Open,
			workorder.InProgress,
			workorder.Completed,
			workorder.ReadyForInvoicing,
			workorder.Invoiced,
			workorder.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []workorder.Status{
			workorder.Unknown,
			workorder.Status(-1),
			workorder.Status(7),
			workorder.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire names for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   workorder.Status
			expected string
		}{
			{workorder.Open, "OPEN"},
			{workorder.InProgress, "IN_PROGRESS"},
			{workorder.Completed, "COMPLETED"},
			{workorder.ReadyForInvoicing, "READY_FOR_INVOICING"},
			{workorder.Invoiced, "INVOICED"},
			{workorder.Cancelled, "CANCELLED"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "UNKNOWN", workorder.Unknown.String())
		assert.Equal(t, "UNKNOWN", workorder.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all wire names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected workorder.Status
		}{
			{"OPEN", workorder.Open},
			{"IN_PROGRESS", workorder.InProgress},
			{"COMPLETED", workorder.Completed},
			{"READY_FOR_INVOICING", workorder.ReadyForInvoicing},
			{"INVOICED", workorder.Invoiced},
			{"CANCELLED", workorder.Cancelled},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should parse %s", tc.name), func(t *testing.T) {
				status, err := workorder.StatusFromString(tc.name)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, status)
			})
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "open", "DONE", "IN PROGRESS"} {
			status, err := workorder.StatusFromString(name)

			require.Error(t, err)
			assert.Equal(t, workorder.Unknown, status)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Invoiced and Cancelled as terminal", func(t *testing.T) {
		assert.True(t, workorder.Invoiced.IsTerminal())
		assert.True(t, workorder.Cancelled.IsTerminal())
	})

	t.Run("should report every other status as non-terminal", func(t *testing.T) {
		for _, status := range []workorder.Status{
			workorder.Open,
			workorder.InProgress,
			workorder.Completed,
			workorder.ReadyForInvoicing,
		} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	nonTerminal := []workorder.Status{
		workorder.Open,
		workorder.InProgress,
		workorder.Completed,
		workorder.ReadyForInvoicing,
	}
	all := []workorder.Status{
		workorder.Open,
		workorder.InProgress,
		workorder.Completed,
		workorder.ReadyForInvoicing,
		workorder.Invoiced,
		workorder.Cancelled,
	}

	t.Run("should accept any transition from a non-terminal status", func(t *testing.T) {
		for _, from := range nonTerminal {
			for _, to := range all {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					next, err := from.TransitionTo(to)

					require.NoError(t, err)
					assert.Equal(t, to, next)
				})
			}
		}
	})

	t.Run("should accept self transitions", func(t *testing.T) {
		next, err := workorder.Open.TransitionTo(workorder.Open)

		require.NoError(t, err)
		assert.Equal(t, workorder.Open, next)
	})

	t.Run("should reject any transition from a terminal status", func(t *testing.T) {
		for _, from := range []workorder.Status{workorder.Invoiced, workorder.Cancelled} {
			for _, to := range all {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					next, err := from.TransitionTo(to)

					require.Error(t, err)
					assert.Equal(t, workorder.Unknown, next)
					assert.IsType(t, &errs.ValueIsInvalidError{}, err)
					assert.Contains(t, err.Error(), "terminal state")
				})
			}
		}
	})

	t.Run("should reject transitions involving invalid statuses", func(t *testing.T) {
		_, err := workorder.Unknown.TransitionTo(workorder.Open)
		require.Error(t, err)

		_, err = workorder.Open.TransitionTo(workorder.Unknown)
		require.Error(t, err)

		_, err = workorder.Open.TransitionTo(workorder.Status(99))
		require.Error(t, err)
	})
}
