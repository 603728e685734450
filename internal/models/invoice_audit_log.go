package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvoiceAuditLog records every accepted write against the database-backed
// store. The demo store never produces rows here.
type InvoiceAuditLog struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	InvoiceID   *uuid.UUID `gorm:"index"`
	Action      string     `gorm:"index"`
	Payload     datatypes.JSON
	PerformedBy string
	CreatedAt   time.Time
}
