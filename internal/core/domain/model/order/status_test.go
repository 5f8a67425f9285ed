package order_test

import (
	"fmt"
	"testing"

	"homebar/internal/core/domain/model/order"
	"homebar/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Queued))
		assert.Equal(t, 2, int(order.InProgress))
		assert.Equal(t, 3, int(order.Ready))
		assert.Equal(t, 4, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Queued,
			order.InProgress,
			order.Ready,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
			order.Status(100),
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
	testCases := []struct {
		status   order.Status
		expected string
	}{
		{order.Queued, "Queued"},
		{order.InProgress, "InProgress"},
		{order.Ready, "Ready"},
		{order.Cancelled, "Cancelled"},
		{order.Unknown, "Unknown"},
		{order.Status(42), "Unknown"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.status.String())
		})
	}
}

func TestStatus_Label(t *testing.T) {
	t.Run("should return localized labels", func(t *testing.T) {
		assert.Equal(t, "В очереди", order.Queued.Label())
		assert.Equal(t, "В процессе", order.InProgress.Label())
		assert.Equal(t, "Готов", order.Ready.Label())
		assert.Equal(t, "Отменен", order.Cancelled.Label())
	})

	t.Run("should fall back to canonical name", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Unknown.Label())
	})
}

func TestParseStatusLabel(t *testing.T) {
	t.Run("should parse all valid labels", func(t *testing.T) {
		testCases := []struct {
			label    string
			expected order.Status
		}{
			{"В очереди", order.Queued},
			{"В процессе", order.InProgress},
			{"Готов", order.Ready},
			{"Отменен", order.Cancelled},
		}

		for _, tc := range testCases {
			status, err := order.ParseStatusLabel(tc.label)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown literals", func(t *testing.T) {
		for _, label := range []string{"", "Queued", "готов", "done", "В Очереди"} {
			status, err := order.ParseStatusLabel(label)

			require.Error(t, err, "label %q should be rejected", label)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Queued.IsTerminal())
	assert.False(t, order.InProgress.IsTerminal())
	assert.True(t, order.Ready.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_ExpectsNotification(t *testing.T) {
	assert.True(t, order.Queued.ExpectsNotification())
	assert.True(t, order.InProgress.ExpectsNotification())
	assert.False(t, order.Ready.ExpectsNotification())
	assert.False(t, order.Cancelled.ExpectsNotification())
}

func TestStatus_Take(t *testing.T) {
	t.Run("should allow Queued to InProgress", func(t *testing.T) {
		newStatus, err := order.Queued.Take()

		require.NoError(t, err)
		assert.Equal(t, order.InProgress, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.InProgress, order.Ready, order.Cancelled} {
			newStatus, err := status.Take()

			require.Error(t, err, "take from %s should fail", status)
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
			assert.Equal(t, order.Status(0), newStatus)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should allow InProgress to Ready", func(t *testing.T) {
		newStatus, err := order.InProgress.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Ready, newStatus)
	})

	t.Run("should reject from any other status", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Queued, order.Ready, order.Cancelled} {
			_, err := status.Complete()

			require.Error(t, err, "complete from %s should fail", status)
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should allow Queued and InProgress to Cancelled", func(t *testing.T) {
		for _, status := range []order.Status{order.Queued, order.InProgress} {
			newStatus, err := status.Cancel()

			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("should reject from terminal statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Ready, order.Cancelled} {
			_, err := status.Cancel()

			require.Error(t, err, "cancel from %s should fail", status)
			require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		}
	})
}

// TestStatus_TransitionTo walks every (from, to) pair and checks that exactly
// the edges of the lifecycle graph are accepted.
func TestStatus_TransitionTo(t *testing.T) {
	allowed := map[order.Status]map[order.Status]bool{
		order.Queued:     {order.InProgress: true, order.Cancelled: true},
		order.InProgress: {order.Ready: true, order.Cancelled: true},
		order.Ready:      {},
		order.Cancelled:  {},
	}

	statuses := []order.Status{order.Queued, order.InProgress, order.Ready, order.Cancelled}
	for _, from := range statuses {
		for _, to := range statuses {
			from, to := from, to
			t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
				newStatus, err := from.TransitionTo(to)

				if allowed[from][to] {
					require.NoError(t, err)
					assert.Equal(t, to, newStatus)
				} else {
					require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
				}
			})
		}
	}
}
