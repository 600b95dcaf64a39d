package db

import (
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"
)

const (
	SettingCodePrefix = "model_code_prefix"
	SettingCodeDigits = "model_code_digits"
)

// Setting is a tenant-wide key -> string entry. Readers fall back to
// hard-coded defaults when a key is absent.
type Setting struct {
	ID        uint      `gorm:"primaryKey"`
	Key       string    `gorm:"size:80;uniqueIndex;not null"`
	Value     string    `gorm:"size:500;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func GetSetting(conn *gorm.DB, key, fallback string) string {
	var setting Setting
	if err := conn.Where("key = ?", key).First(&setting).Error; err != nil {
		return fallback
	}
	return setting.Value
}

func GetSettingInt(conn *gorm.DB, key string, fallback int) int {
	raw := GetSetting(conn, key, "")
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func PutSetting(conn *gorm.DB, key, value string) error {
	var setting Setting
	err := conn.Where("key = ?", key).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return conn.Create(&Setting{Key: key, Value: value}).Error
	}
	if err != nil {
		return err
	}
	return conn.Model(&setting).Update("value", value).Error
}
