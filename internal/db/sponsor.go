package db

import "time"

type Sponsor struct {
	ID        uint      `gorm:"primaryKey"`
	EventID   uint      `gorm:"index;not null"`
	Name      string    `gorm:"size:200;not null"`
	Tier      string    `gorm:"size:40"`
	LogoURL   string    `gorm:"size:500"`
	Website   string    `gorm:"size:300"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
