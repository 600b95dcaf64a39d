package db

import "time"

// SpecialMention is a judge's discretionary award outside the ranked scoring.
type SpecialMention struct {
	ID        uint      `gorm:"primaryKey"`
	ModelID   uint      `gorm:"index;not null;uniqueIndex:idx_special_mentions_model_judge"`
	JudgeID   uint      `gorm:"index;not null;uniqueIndex:idx_special_mentions_model_judge"`
	Title     string    `gorm:"size:200;not null"`
	Note      string    `gorm:"size:1000"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
