package scheduler

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/timezone"
)

// openEndSentinel stands in for a missing end date when comparing
// assignment ranges; an open-ended assignment conflicts with anything
// that starts before the end of time.
var openEndSentinel = time.Date(2099, time.December, 31, 0, 0, 0, 0, timezone.Local)

func effectiveEnd(endDate *string) (time.Time, error) {
	if endDate == nil {
		return openEndSentinel, nil
	}
	return timezone.ParseDate(*endDate)
}

// CheckAssignmentOverlap rejects a proposed [startDate, endDate] range
// for an employee-to-center assignment when it intersects any existing
// assignment of the same pair. Intervals are closed on both ends.
// excludeID skips the assignment being updated; pass uuid.Nil on create.
func CheckAssignmentOverlap(existing []*domain.WorkCenter, startDate string, endDate *string, excludeID uuid.UUID) error {
	proposedStart, err := timezone.ParseDate(startDate)
	if err != nil {
		return fmt.Errorf("start date %q is not a valid YYYY-MM-DD date", startDate)
	}
	proposedEnd, err := effectiveEnd(endDate)
	if err != nil {
		return fmt.Errorf("end date %q is not a valid YYYY-MM-DD date", *endDate)
	}

	for _, assignment := range existing {
		if assignment.ID == excludeID {
			continue
		}

		existingStart, err := timezone.ParseDate(assignment.StartDate)
		if err != nil {
			return err
		}
		existingEnd, err := effectiveEnd(assignment.EndDate)
		if err != nil {
			return err
		}

		if existingStart.After(proposedEnd) || proposedStart.After(existingEnd) {
			continue
		}

		name := assignment.EmployeeID.String()
		if assignment.Employee != nil {
			name = assignment.Employee.FullName()
		}
		return &OverlapError{
			EmployeeName: name,
			StartDate:    assignment.StartDate,
			EndDate:      assignment.EndDate,
		}
	}

	return nil
}
