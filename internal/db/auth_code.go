package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthCode is a one-shot record backing the SPA token exchange. It lives in
// the store rather than process memory so the exchange survives restarts.
// Expiry is checked on every read; a code is deleted on its first successful
// redemption or once expired.
type AuthCode struct {
	Code      string    `gorm:"primaryKey;size:64"`
	UserID    uint      `gorm:"index;not null"`
	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// IssueAuthCode stores a fresh code for the user, valid for ttl.
func IssueAuthCode(conn *gorm.DB, userID uint, ttl time.Duration) (string, error) {
	record := AuthCode{
		Code:      uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	if err := conn.Create(&record).Error; err != nil {
		return "", err
	}
	return record.Code, nil
}

// RedeemAuthCode consumes a code, returning the user it was issued for.
// Unknown, already-redeemed and expired codes all report ErrNotFound.
func RedeemAuthCode(conn *gorm.DB, code string) (uint, error) {
	var record AuthCode
	if err := conn.Where("code = ?", code).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	// Delete first so the code is one-shot even when it turns out expired.
	result := conn.Where("code = ?", code).Delete(&AuthCode{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		// Another redeemer got here first.
		return 0, ErrNotFound
	}
	if time.Now().UTC().After(record.ExpiresAt) {
		return 0, ErrNotFound
	}
	return record.UserID, nil
}

// PurgeExpiredAuthCodes removes codes past their expiry.
func PurgeExpiredAuthCodes(conn *gorm.DB) error {
	return conn.Where("expires_at < ?", time.Now().UTC()).Delete(&AuthCode{}).Error
}
