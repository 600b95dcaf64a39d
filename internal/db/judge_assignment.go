package db

import "time"

// JudgeAssignment grants a judge visibility into one event's models,
// optionally narrowed to a single category. One assignment per (event, judge).
type JudgeAssignment struct {
	ID         uint      `gorm:"primaryKey"`
	EventID    uint      `gorm:"index;not null;uniqueIndex:idx_judge_assignments_event_judge"`
	JudgeID    uint      `gorm:"index;not null;uniqueIndex:idx_judge_assignments_event_judge"`
	CategoryID *uint     `gorm:"index"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
