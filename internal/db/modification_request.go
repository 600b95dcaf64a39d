package db

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ModificationPending  = "pending"
	ModificationApproved = "approved"
	ModificationRejected = "rejected"
)

// ModificationRequest records a participant asking staff to change a locked
// entry. Changes carries only allow-listed fields, validated before insert.
type ModificationRequest struct {
	ID          uint           `gorm:"primaryKey"`
	ModelID     uint           `gorm:"index;not null"`
	RequesterID uint           `gorm:"index;not null"`
	Changes     datatypes.JSON `gorm:"type:jsonb;not null"`
	Status      string         `gorm:"size:20;not null;default:'pending'"`
	ReviewedBy  *uint          `gorm:"index"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}
