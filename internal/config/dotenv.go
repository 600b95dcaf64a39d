package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port                     string
	DefaultTenant            string
	Tenants                  map[string]string
	JWTSecret                string
	JWTTTLMinutes            int
	AuthCodeTTLSeconds       int
	DefaultCodePrefix        string
	DefaultCodeDigits        int
	CodeAllocationAttempts   int
	DBMaxOpenConns           int
	DBMaxIdleConns           int
	DBConnMaxLifetimeSeconds int
	DBConnMaxIdleTimeSeconds int
	S3Bucket                 string
	S3Region                 string
	UploadURLTTLSeconds      int
	SMTPAddr                 string
	SMTPFrom                 string
	SMTPUsername             string
	SMTPPassword             string
}

func Default() Config {
	return Config{
		Port:                     "8080",
		DefaultTenant:            "default",
		Tenants:                  map[string]string{},
		JWTTTLMinutes:            120,
		AuthCodeTTLSeconds:       120,
		DefaultCodePrefix:        "ENTRY",
		DefaultCodeDigits:        6,
		CodeAllocationAttempts:   5,
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
		UploadURLTTLSeconds:      900,
	}
}

func Load() Config {
	cfg := Default()
	if raw := os.Getenv("PORT"); raw != "" {
		cfg.Port = raw
	}
	if raw := os.Getenv("DEFAULT_TENANT"); raw != "" {
		cfg.DefaultTenant = raw
	}
	if raw := os.Getenv("DATABASE_URL"); raw != "" {
		cfg.Tenants[cfg.DefaultTenant] = raw
	}
	for name, dsn := range ParseTenantDatabases(os.Getenv("TENANT_DATABASES")) {
		cfg.Tenants[name] = dsn
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if raw := os.Getenv("JWT_TTL_MINUTES"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.JWTTTLMinutes = value
		}
	}
	if raw := os.Getenv("AUTH_CODE_TTL_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.AuthCodeTTLSeconds = value
		}
	}
	if raw := os.Getenv("MODEL_CODE_PREFIX"); raw != "" {
		cfg.DefaultCodePrefix = raw
	}
	if raw := os.Getenv("MODEL_CODE_DIGITS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DefaultCodeDigits = value
		}
	}
	if raw := os.Getenv("CODE_ALLOCATION_ATTEMPTS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.CodeAllocationAttempts = value
		}
	}
	if raw := os.Getenv("DB_MAX_OPEN_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxOpenConns = value
		}
	}
	if raw := os.Getenv("DB_MAX_IDLE_CONNS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBMaxIdleConns = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_LIFETIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxLifetimeSeconds = value
		}
	}
	if raw := os.Getenv("DB_CONN_MAX_IDLE_TIME_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.DBConnMaxIdleTimeSeconds = value
		}
	}
	cfg.S3Bucket = os.Getenv("S3_BUCKET")
	if raw := os.Getenv("S3_REGION"); raw != "" {
		cfg.S3Region = raw
	}
	if raw := os.Getenv("UPLOAD_URL_TTL_SECONDS"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			cfg.UploadURLTTLSeconds = value
		}
	}
	cfg.SMTPAddr = os.Getenv("SMTP_ADDR")
	cfg.SMTPFrom = os.Getenv("SMTP_FROM")
	cfg.SMTPUsername = os.Getenv("SMTP_USERNAME")
	cfg.SMTPPassword = os.Getenv("SMTP_PASSWORD")
	return cfg
}

// ParseTenantDatabases parses "club=postgres://...;guild=postgres://..." into a
// name -> DSN map. Entries without a name or DSN are skipped.
func ParseTenantDatabases(raw string) map[string]string {
	tenants := map[string]string{}
	for _, entry := range strings.Split(raw, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		name, dsn, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		dsn = strings.TrimSpace(dsn)
		if !ok || name == "" || dsn == "" {
			continue
		}
		tenants[name] = dsn
	}
	return tenants
}
