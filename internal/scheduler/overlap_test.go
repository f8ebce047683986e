package scheduler

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestCheckAssignmentOverlap(t *testing.T) {
	employee := &domain.Employee{FirstName: "Minh", LastName: "Nguyen"}

	bounded := &domain.WorkCenter{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		StartDate:  "2025-01-01",
		EndDate:    strPtr("2025-06-30"),
		Employee:   employee,
	}
	openEnded := &domain.WorkCenter{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		StartDate:  "2025-03-01",
		Employee:   employee,
	}

	t.Run("disjoint after", func(t *testing.T) {
		assert.NoError(t, CheckAssignmentOverlap([]*domain.WorkCenter{bounded}, "2025-07-01", strPtr("2025-12-31"), uuid.Nil))
	})

	t.Run("disjoint before", func(t *testing.T) {
		assert.NoError(t, CheckAssignmentOverlap([]*domain.WorkCenter{bounded}, "2024-01-01", strPtr("2024-12-31"), uuid.Nil))
	})

	t.Run("bounded ranges intersect", func(t *testing.T) {
		err := CheckAssignmentOverlap([]*domain.WorkCenter{bounded}, "2025-06-30", strPtr("2025-12-31"), uuid.Nil)

		var overlapErr *OverlapError
		require.ErrorAs(t, err, &overlapErr)
		assert.Equal(t, "Minh Nguyen", overlapErr.EmployeeName)
		assert.Contains(t, err.Error(), "2025-01-01")
	})

	t.Run("open proposal against later bounded assignment", func(t *testing.T) {
		err := CheckAssignmentOverlap([]*domain.WorkCenter{bounded}, "2024-12-01", nil, uuid.Nil)
		assert.Error(t, err)
	})

	t.Run("bounded proposal against earlier open-ended assignment", func(t *testing.T) {
		err := CheckAssignmentOverlap([]*domain.WorkCenter{openEnded}, "2026-01-01", strPtr("2026-06-30"), uuid.Nil)

		var overlapErr *OverlapError
		require.ErrorAs(t, err, &overlapErr)
		assert.Nil(t, overlapErr.EndDate)
	})

	t.Run("proposal fully before open-ended assignment", func(t *testing.T) {
		assert.NoError(t, CheckAssignmentOverlap([]*domain.WorkCenter{openEnded}, "2025-01-01", strPtr("2025-02-28"), uuid.Nil))
	})

	t.Run("updating an assignment skips itself", func(t *testing.T) {
		assert.NoError(t, CheckAssignmentOverlap([]*domain.WorkCenter{bounded}, "2025-02-01", strPtr("2025-05-31"), bounded.ID))
	})

	t.Run("single shared day conflicts", func(t *testing.T) {
		err := CheckAssignmentOverlap([]*domain.WorkCenter{bounded}, "2025-06-30", strPtr("2025-06-30"), uuid.Nil)
		assert.Error(t, err)
	})

	t.Run("bad start date", func(t *testing.T) {
		err := CheckAssignmentOverlap(nil, "soon", nil, uuid.Nil)
		assert.ErrorContains(t, err, "not a valid YYYY-MM-DD date")
	})
}
