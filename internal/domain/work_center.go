package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkCenter is a long-lived staffing relationship between one employee
// and one service center. EndDate nil means the assignment is open-ended.
// Dates are calendar dates in YYYY-MM-DD.
type WorkCenter struct {
	ID         uuid.UUID `json:"id"`
	EmployeeID uuid.UUID `json:"employeeId"`
	CenterID   uuid.UUID `json:"centerId"`
	StartDate  string    `json:"startDate"`
	EndDate    *string   `json:"endDate"`
	CreatedAt  time.Time `json:"createdAt"`
	Version    int32     `json:"-"`

	Employee *Employee      `json:"employee,omitempty"`
	Center   *ServiceCenter `json:"center,omitempty"`
}
