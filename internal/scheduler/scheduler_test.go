package scheduler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func TestCheckCapacity(t *testing.T) {
	t.Run("fits exactly", func(t *testing.T) {
		assert.NoError(t, CheckCapacity("2025-01-06", 5, 3, 2))
	})

	t.Run("exceeds", func(t *testing.T) {
		err := CheckCapacity("2025-01-06", 5, 4, 3)

		var capErr *CapacityError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, int32(5), capErr.Max)
		assert.Equal(t, 4, capErr.Current)
		assert.Equal(t, 3, capErr.Attempted)
		assert.Contains(t, err.Error(), "2025-01-06")
		assert.Contains(t, err.Error(), "maximum 5 slots")
	})

	t.Run("message without date", func(t *testing.T) {
		err := CheckCapacity("", 2, 2, 1)
		require.Error(t, err)
		assert.Equal(t, "shift is full: maximum 2 slots, 2 taken, 1 more requested", err.Error())
	})
}

func TestFindDuplicates(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	existing := []*domain.WorkSchedule{
		{EmployeeID: alice, Date: "2025-01-06"},
		{EmployeeID: bob, Date: "2025-01-08"},
	}

	t.Run("none", func(t *testing.T) {
		assert.Empty(t, FindDuplicates(existing, []uuid.UUID{carol}, []string{"2025-01-06", "2025-01-08"}))
		assert.Empty(t, FindDuplicates(existing, []uuid.UUID{alice}, []string{"2025-01-08"}))
	})

	t.Run("reports every colliding pair", func(t *testing.T) {
		duplicates := FindDuplicates(existing, []uuid.UUID{alice, bob}, []string{"2025-01-06", "2025-01-08"})
		assert.Equal(t, []EntryKey{
			{EmployeeID: alice, Date: "2025-01-06"},
			{EmployeeID: bob, Date: "2025-01-08"},
		}, duplicates)
	})
}

func TestDiffAssignees(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carol := uuid.New()

	t.Run("identical set is a no-op", func(t *testing.T) {
		toAdd, toRemove := DiffAssignees([]uuid.UUID{alice, bob}, []uuid.UUID{bob, alice})
		assert.Empty(t, toAdd)
		assert.Empty(t, toRemove)
	})

	t.Run("add and remove", func(t *testing.T) {
		toAdd, toRemove := DiffAssignees([]uuid.UUID{alice, bob}, []uuid.UUID{bob, carol})
		assert.Equal(t, []uuid.UUID{carol}, toAdd)
		assert.Equal(t, []uuid.UUID{alice}, toRemove)
	})

	t.Run("empty current", func(t *testing.T) {
		toAdd, toRemove := DiffAssignees(nil, []uuid.UUID{alice})
		assert.Equal(t, []uuid.UUID{alice}, toAdd)
		assert.Empty(t, toRemove)
	})

	t.Run("empty next removes everyone", func(t *testing.T) {
		toAdd, toRemove := DiffAssignees([]uuid.UUID{alice, bob}, nil)
		assert.Empty(t, toAdd)
		assert.Equal(t, []uuid.UUID{alice, bob}, toRemove)
	})
}
