package db

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"showbench/internal/codes"
)

type Model struct {
	ID          uint         `gorm:"primaryKey"`
	OwnerUserID uint         `gorm:"index;not null"`
	TeamID      *uint        `gorm:"index"`
	CategoryID  uint         `gorm:"index;not null"`
	Name        string       `gorm:"size:200;not null"`
	Description string       `gorm:"size:2000"`
	Code        string       `gorm:"size:40;uniqueIndex;not null"`
	ImageURL    string       `gorm:"size:500"`
	CreatedAt   time.Time    `gorm:"not null"`
	UpdatedAt   time.Time    `gorm:"not null"`
	Images      []ModelImage `gorm:"constraint:OnDelete:CASCADE"`
	Votes       []Vote       `gorm:"constraint:OnDelete:CASCADE"`
}

// CreateModelWithCode inserts the model under the next free sequential code.
// The scan of existing codes is only a fast-path guess: the unique index on
// models.code is authoritative, so a losing racer sees ErrDuplicatedKey,
// bumps the sequence and tries again up to maxAttempts. Any other insert
// failure propagates immediately.
func CreateModelWithCode(conn *gorm.DB, model *Model, prefix string, width, maxAttempts int) error {
	prefix = codes.Normalize(prefix)
	var existing []string
	if err := conn.Model(&Model{}).Where("code LIKE ?", prefix+"-%").Pluck("code", &existing).Error; err != nil {
		return err
	}
	sequence := codes.MaxSequence(existing, prefix) + 1
	return insertModelWithCode(model, prefix, sequence, width, maxAttempts, func(m *Model) error {
		return conn.Create(m).Error
	})
}

// insertModelWithCode is the retry loop behind CreateModelWithCode, split out
// so tests can inject the insert step.
func insertModelWithCode(model *Model, prefix string, sequence, width, maxAttempts int, insert func(*Model) error) error {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		model.ID = 0
		model.Code = codes.Format(prefix, sequence, width)
		err := insert(model)
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
		sequence++
	}
	return ErrCodeSpaceExhausted
}
