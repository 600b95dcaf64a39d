package db

import "time"

type Category struct {
	ID          uint      `gorm:"primaryKey"`
	EventID     uint      `gorm:"index;not null;uniqueIndex:idx_categories_event_name"`
	Name        string    `gorm:"size:120;not null;uniqueIndex:idx_categories_event_name"`
	Description string    `gorm:"size:1000"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
	Models      []Model
}
