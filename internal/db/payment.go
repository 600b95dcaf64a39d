package db

import "time"

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentRefunded  = "refunded"
)

type Payment struct {
	ID             uint      `gorm:"primaryKey"`
	RegistrationID uint      `gorm:"index;not null"`
	Reference      string    `gorm:"size:64;uniqueIndex;not null"`
	AmountCents    int       `gorm:"not null"`
	Currency       string    `gorm:"size:3;not null;default:'EUR'"`
	Status         string    `gorm:"size:20;not null;default:'pending'"`
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`
}
