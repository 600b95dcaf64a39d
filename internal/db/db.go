package db

import (
	"errors"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"showbench/internal/config"
	"showbench/internal/logging"
)

// Open connects to one tenant database. TranslateError is enabled so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Open(dsn string, cfg config.Config) (*gorm.DB, error) {
	if dsn == "" {
		return nil, errors.New("database DSN is empty")
	}
	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.DBConnMaxLifetimeSeconds) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.DBConnMaxIdleTimeSeconds) * time.Second)
	return conn, nil
}

// Migrate runs GORM auto-migrations for the core tables. The SQL migrations
// under db/migrations are authoritative for deployments; this keeps dev
// databases usable without the migrate CLI.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return errors.New("db connection is nil")
	}
	if err := conn.AutoMigrate(
		&User{},
		&Event{},
		&Category{},
		&Model{},
		&ModelImage{},
		&Vote{},
		&JudgeAssignment{},
		&Registration{},
		&Payment{},
		&Sponsor{},
		&SpecialMention{},
		&ModificationRequest{},
		&Setting{},
		&AuthCode{},
	); err != nil {
		return err
	}
	logging.Log.Info("database migration complete")
	return nil
}
