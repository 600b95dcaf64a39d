package db

import "time"

type ModelImage struct {
	ID        uint      `gorm:"primaryKey"`
	ModelID   uint      `gorm:"index;not null"`
	ObjectKey string    `gorm:"size:300;not null"`
	URL       string    `gorm:"size:500;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
