package domain

import (
	"time"

	"github.com/google/uuid"
)

type CenterStatus string

const (
	CenterStatusOpen   CenterStatus = "OPEN"
	CenterStatusClosed CenterStatus = "CLOSED"
)

type ServiceCenter struct {
	ID        uuid.UUID    `json:"id"`
	Name      string       `json:"name"`
	Address   string       `json:"address"`
	Status    CenterStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	Version   int32        `json:"-"`
}
