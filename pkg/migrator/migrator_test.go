package migrator

import (
	"os"
	"testing"
	"testing/fstest"
)

func TestVersionTable(t *testing.T) {
	if got := VersionTable("order"); got != "goose_db_version_order" {
		t.Fatalf("unexpected table %q", got)
	}
}

func TestRunMigrations_BadURL(t *testing.T) {
	files := fstest.MapFS{"00001_noop.sql": {Data: []byte("-- +goose Up\nSELECT 1;\n")}}
	if err := RunMigrations("postgres://nobody:x@localhost:1/none?sslmode=disable&connect_timeout=1", "test", files); err == nil {
		t.Fatal("expected error for unreachable database")
	}
}

// Integration test: skipped unless TEST_DATABASE_URL is set.
func TestRunMigrationsIntegration(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration tests")
	}
	files := fstest.MapFS{
		"00001_probe.sql": {Data: []byte("-- +goose Up\nCREATE TABLE IF NOT EXISTS migrator_probe (id INT);\n-- +goose Down\nDROP TABLE migrator_probe;\n")},
	}
	if err := RunMigrations(url, "migrator_test", files); err != nil {
		t.Fatalf("RunMigrations: %v", err)
	}
	// Second run is a no-op.
	if err := RunMigrations(url, "migrator_test", files); err != nil {
		t.Fatalf("second RunMigrations: %v", err)
	}
}
