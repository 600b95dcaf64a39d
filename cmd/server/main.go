package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"showbench/internal/config"
	"showbench/internal/db"
	"showbench/internal/logging"
	"showbench/internal/mailer"
	"showbench/internal/server"
	"showbench/internal/uploads"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		logging.Log.Warnf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	if len(cfg.Tenants) == 0 {
		logging.Log.Fatal("no tenant databases configured (set DATABASE_URL or TENANT_DATABASES)")
	}
	if cfg.JWTSecret == "" {
		logging.Log.Fatal("JWT_SECRET is not set")
	}

	tenants := make(map[string]*gorm.DB, len(cfg.Tenants))
	for name, dsn := range cfg.Tenants {
		conn, err := db.Open(dsn, cfg)
		if err != nil {
			logging.Log.Fatalf("tenant %s: database connection failed: %v", name, err)
		}
		if err := db.Migrate(conn); err != nil {
			logging.Log.Fatalf("tenant %s: migration failed: %v", name, err)
		}
		tenants[name] = conn
	}

	var presigner uploads.Presigner
	if cfg.S3Bucket != "" {
		p, err := uploads.NewS3Presigner(context.Background(), cfg.S3Bucket, cfg.S3Region,
			time.Duration(cfg.UploadURLTTLSeconds)*time.Second)
		if err != nil {
			logging.Log.Fatalf("presigner setup failed: %v", err)
		}
		presigner = p
	}
	mail := mailer.FromConfig(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUsername, cfg.SMTPPassword)

	srv := server.New(tenants, cfg, presigner, mail)
	logging.Log.Infof("showbench listening on :%s (%d tenants)", cfg.Port, len(tenants))
	if err := srv.Router(gin.ReleaseMode).Run(":" + cfg.Port); err != nil {
		logging.Log.Fatal(err)
	}
}
