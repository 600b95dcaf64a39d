package db

import "time"

const (
	RegistrationPending  = "pending"
	RegistrationApproved = "approved"
	RegistrationPaid     = "paid"
	RegistrationRejected = "rejected"
)

type Registration struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index;not null;uniqueIndex:idx_registrations_user_event"`
	EventID    uint      `gorm:"index;not null;uniqueIndex:idx_registrations_user_event"`
	ModelID    *uint     `gorm:"index"`
	CategoryID *uint     `gorm:"index"`
	Status     string    `gorm:"size:20;not null;default:'pending'"`
	CheckedIn  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
	Payments   []Payment
}

func ValidRegistrationStatus(status string) bool {
	switch status {
	case RegistrationPending, RegistrationApproved, RegistrationPaid, RegistrationRejected:
		return true
	}
	return false
}
