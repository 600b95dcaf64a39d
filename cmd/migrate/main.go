package main

import (
	"log"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"showbench/internal/config"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg := config.Load()
	if len(cfg.Tenants) == 0 {
		log.Fatal("no tenant databases configured (set DATABASE_URL or TENANT_DATABASES)")
	}

	for name, dsn := range cfg.Tenants {
		m, err := migrate.New("file://db/migrations", dsn)
		if err != nil {
			log.Fatalf("tenant %s: migration setup failed: %v", name, err)
		}
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("tenant %s: database migration failed: %v", name, err)
		}
		log.Printf("tenant %s: database migrations applied", name)
	}
}
