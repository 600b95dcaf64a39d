package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// Creates a timestamped up/down migration pair. cmd/migrate later applies the
// pair across every configured tenant database, so the stubs carry a reminder
// that the SQL runs once per tenant.

var nameChars = regexp.MustCompile(`[^a-z0-9_]+`)

func main() {
	name := flag.String("name", "", "migration name, e.g. add_sponsor_tier")
	dir := flag.String("dir", filepath.Join("db", "migrations"), "migrations directory")
	flag.Parse()

	slug := normalizeName(*name)
	if slug == "" {
		log.Fatal("migration name is required")
	}

	version := time.Now().UTC().Format("20060102150405")
	base := fmt.Sprintf("%s_%s", version, slug)
	upPath := filepath.Join(*dir, base+".up.sql")
	downPath := filepath.Join(*dir, base+".down.sql")

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("create migrations dir: %v", err)
	}

	header := fmt.Sprintf("-- %s: applied to every tenant database by cmd/migrate\n", slug)
	if err := writeStub(upPath, header); err != nil {
		log.Fatalf("create up migration: %v", err)
	}
	if err := writeStub(downPath, header); err != nil {
		log.Fatalf("create down migration: %v", err)
	}

	log.Printf("created %s and %s", upPath, downPath)
}

// normalizeName turns a free-form name into a snake_case slug so file names
// stay consistent with the initial schema migration.
func normalizeName(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.ReplaceAll(slug, " ", "_")
	slug = strings.ReplaceAll(slug, "-", "_")
	slug = nameChars.ReplaceAllString(slug, "")
	return strings.Trim(slug, "_")
}

func writeStub(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("file already exists: %s", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
