package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkSchedule is one employee's assignment to one shift on one
// calendar date (YYYY-MM-DD).
type WorkSchedule struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employeeId"`
	ShiftID    uuid.UUID `json:"shiftId"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`

	Employee *Employee      `json:"employee,omitempty"`
	Shift    *Shift         `json:"shift,omitempty"`
	Center   *ServiceCenter `json:"center,omitempty"`
}
