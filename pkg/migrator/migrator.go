// Package migrator applies the goose migrations embedded by each
// migrations/<context> program.
package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// VersionTable returns the goose version table used by a bounded context.
// Each context keeps its own table so their migration sequences never collide.
func VersionTable(boundedContext string) string {
	return "goose_db_version_" + boundedContext
}

// RunMigrations applies all pending migrations in files for boundedContext against dbUrl.
func RunMigrations(dbUrl, boundedContext string, files fs.FS) error {
	db, err := sql.Open("pgx", dbUrl)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	goose.SetBaseFS(files)
	goose.SetTableName(VersionTable(boundedContext))

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to up %s migrations: %w", boundedContext, err)
	}
	return nil
}
