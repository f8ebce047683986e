package domain

import (
	"time"

	"github.com/google/uuid"
)

type ShiftStatus string

const (
	ShiftStatusActive   ShiftStatus = "ACTIVE"
	ShiftStatusInactive ShiftStatus = "INACTIVE"
)

// Shift is a working window of one service center. StartTime and
// EndTime are times of day in HH:mm:ss; an end before the start means
// the shift runs overnight. StartDate, EndDate and RepeatDays together
// describe an optional recurrence pattern (days use 0=Sunday..6=Saturday).
type Shift struct {
	ID          uuid.UUID   `json:"id"`
	CenterID    uuid.UUID   `json:"centerId"`
	Name        string      `json:"name"`
	StartTime   string      `json:"startTime"`
	EndTime     string      `json:"endTime"`
	StartDate   *string     `json:"startDate"`
	EndDate     *string     `json:"endDate"`
	RepeatDays  []int       `json:"repeatDays"`
	MaximumSlot int32       `json:"maximumSlot"`
	Status      ShiftStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	Version     int32       `json:"-"`
}

// Recurring reports whether the shift carries a complete recurrence
// pattern and can be expanded into dated schedule entries.
func (s *Shift) Recurring() bool {
	return s.StartDate != nil && s.EndDate != nil && len(s.RepeatDays) > 0
}
