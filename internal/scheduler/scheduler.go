// Package scheduler holds the pure scheduling rules of the platform:
// shift time-window validation, recurrence expansion, capacity and
// duplicate checks for work-schedule entries, and date-range overlap
// checks for work-center assignments. It never touches the database;
// callers load the relevant rows and pass them in.
package scheduler

import (
	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
)

// EntryKey identifies one work-schedule entry within a single shift.
type EntryKey struct {
	EmployeeID uuid.UUID
	Date       string
}

// CheckCapacity rejects an assignment that would push the number of
// entries for one (shift, date) above the shift's maximum slot count.
func CheckCapacity(date string, maximumSlot int32, existing, adding int) error {
	if existing+adding > int(maximumSlot) {
		return &CapacityError{
			Date:      date,
			Max:       maximumSlot,
			Current:   existing,
			Attempted: adding,
		}
	}
	return nil
}

// FindDuplicates returns every candidate (employee, date) pair that is
// already persisted for the shift, in candidate order.
func FindDuplicates(existing []*domain.WorkSchedule, employeeIDs []uuid.UUID, dates []string) []EntryKey {
	persisted := make(map[EntryKey]struct{}, len(existing))
	for _, entry := range existing {
		persisted[EntryKey{EmployeeID: entry.EmployeeID, Date: entry.Date}] = struct{}{}
	}

	var duplicates []EntryKey
	for _, date := range dates {
		for _, employeeID := range employeeIDs {
			key := EntryKey{EmployeeID: employeeID, Date: date}
			if _, ok := persisted[key]; ok {
				duplicates = append(duplicates, key)
			}
		}
	}

	return duplicates
}

// DiffAssignees compares the current assignees of a (shift, date) with
// a requested set and returns who must be added and who removed. Both
// results empty means the request is a no-op.
func DiffAssignees(current, next []uuid.UUID) (toAdd, toRemove []uuid.UUID) {
	currentSet := make(map[uuid.UUID]struct{}, len(current))
	for _, id := range current {
		currentSet[id] = struct{}{}
	}
	nextSet := make(map[uuid.UUID]struct{}, len(next))
	for _, id := range next {
		nextSet[id] = struct{}{}
	}

	for _, id := range next {
		if _, ok := currentSet[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := nextSet[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}

	return toAdd, toRemove
}
