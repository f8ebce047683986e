package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoValidDates is returned when a recurrence expansion produces no
// calendar dates at all.
var ErrNoValidDates = errors.New("no valid dates match the shift's repeat pattern")

// CapacityError reports an assignment that would exceed a shift's
// maximum slot count. Date is empty for single-date assignments where
// the date is already obvious from the request.
type CapacityError struct {
	Date      string
	Max       int32
	Current   int
	Attempted int
}

func (e *CapacityError) Error() string {
	if e.Date != "" {
		return fmt.Sprintf("shift is full on %s: maximum %d slots, %d taken, %d more requested", e.Date, e.Max, e.Current, e.Attempted)
	}
	return fmt.Sprintf("shift is full: maximum %d slots, %d taken, %d more requested", e.Max, e.Current, e.Attempted)
}

type DuplicateEntry struct {
	EmployeeName string
	Date         string
}

// DuplicateError lists every (employee, date) pair of a request that is
// already scheduled on the shift.
type DuplicateError struct {
	Entries []DuplicateEntry
}

func (e *DuplicateError) Error() string {
	parts := make([]string, 0, len(e.Entries))
	for _, entry := range e.Entries {
		parts = append(parts, fmt.Sprintf("%s on %s", entry.EmployeeName, entry.Date))
	}
	return "already scheduled: " + strings.Join(parts, ", ")
}

// OverlapError reports a work-center assignment whose date range
// intersects an existing assignment of the same employee and center.
type OverlapError struct {
	EmployeeName string
	StartDate    string
	EndDate      *string
}

func (e *OverlapError) Error() string {
	if e.EndDate == nil {
		return fmt.Sprintf("%s already has an open-ended assignment to this center starting %s", e.EmployeeName, e.StartDate)
	}
	return fmt.Sprintf("%s already has an assignment to this center from %s to %s", e.EmployeeName, e.StartDate, *e.EndDate)
}
