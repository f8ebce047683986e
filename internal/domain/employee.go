package domain

import (
	"time"

	"github.com/google/uuid"
)

type Employee struct {
	ID        uuid.UUID `json:"id"`
	AccountID uuid.UUID `json:"accountId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"` // joined from the account
	CreatedAt time.Time `json:"createdAt"`
}

func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
