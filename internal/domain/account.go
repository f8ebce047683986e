package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleStaff      Role = "STAFF"
	RoleTechnician Role = "TECHNICIAN"
	RoleCustomer   Role = "CUSTOMER"
)

// Schedulable reports whether accounts with this role may be assigned
// to shifts. Only staff and technicians work shifts.
func (r Role) Schedulable() bool {
	return r == RoleStaff || r == RoleTechnician
}

type Account struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
