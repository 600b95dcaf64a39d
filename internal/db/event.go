package db

import "time"

const (
	EventDraft  = "draft"
	EventActive = "active"
	EventClosed = "closed"
)

type Event struct {
	ID            uint       `gorm:"primaryKey"`
	Name          string     `gorm:"size:200;not null"`
	Description   string     `gorm:"size:2000"`
	Status        string     `gorm:"size:20;not null;default:'draft'"`
	Location      string     `gorm:"size:200"`
	StartsAt      *time.Time `gorm:"index"`
	EndsAt        *time.Time
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
	Categories    []Category
	Registrations []Registration
	Sponsors      []Sponsor
}

func ValidEventStatus(status string) bool {
	switch status {
	case EventDraft, EventActive, EventClosed:
		return true
	}
	return false
}
