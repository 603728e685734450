package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice carries its amount in cents. The placeholder dataset has no
// primary key per invoice; the uuid ID is only populated by the
// database-backed store.
type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	CustomerID string    `gorm:"index" json:"customer_id"`
	Amount     int64     `gorm:"index" json:"amount"`
	Status     string    `gorm:"index" json:"status"`
	Date       string    `gorm:"index" json:"date"`
	CreatedAt  time.Time `json:"-"`
}
