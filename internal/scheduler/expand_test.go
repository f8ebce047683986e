package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandDates(t *testing.T) {
	t.Run("mondays and wednesdays over two weeks", func(t *testing.T) {
		// 2025-01-06 is a Monday
		dates, err := ExpandDates("2025-01-06", "2025-01-19", []int{1, 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-06", "2025-01-08", "2025-01-13", "2025-01-15"}, dates)
	})

	t.Run("range boundaries are inclusive", func(t *testing.T) {
		dates, err := ExpandDates("2025-01-06", "2025-01-06", []int{1})
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-06"}, dates)
	})

	t.Run("no weekday inside the range", func(t *testing.T) {
		// Tuesday to Thursday, asking for Sundays only
		dates, err := ExpandDates("2025-01-07", "2025-01-09", []int{0})
		require.NoError(t, err)
		assert.Empty(t, dates)
	})

	t.Run("every day of a week", func(t *testing.T) {
		dates, err := ExpandDates("2025-01-06", "2025-01-12", []int{0, 1, 2, 3, 4, 5, 6})
		require.NoError(t, err)
		assert.Len(t, dates, 7)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := ExpandDates("2025-01-19", "2025-01-06", []int{1})
		assert.ErrorContains(t, err, "end date must not be before start date")
	})

	t.Run("empty repeat days", func(t *testing.T) {
		_, err := ExpandDates("2025-01-06", "2025-01-19", nil)
		assert.ErrorContains(t, err, "repeat days must not be empty")
	})

	t.Run("repeat day out of range", func(t *testing.T) {
		_, err := ExpandDates("2025-01-06", "2025-01-19", []int{7})
		assert.ErrorContains(t, err, "out of range")
	})

	t.Run("malformed dates", func(t *testing.T) {
		_, err := ExpandDates("06/01/2025", "2025-01-19", []int{1})
		assert.ErrorContains(t, err, "not a valid YYYY-MM-DD date")

		_, err = ExpandDates("2025-01-06", "yesterday", []int{1})
		assert.ErrorContains(t, err, "not a valid YYYY-MM-DD date")
	})
}
