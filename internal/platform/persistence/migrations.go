package persistence

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // PostgreSQL driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // File source driver
)

// RunMigrations brings the ledger schema up to the latest version. The path
// may be given with or without the file:// scheme. A database already at the
// latest version is not an error.
func RunMigrations(databaseURL string, migrationsPath string) error {
	if databaseURL == "" {
		return errors.New("database URL cannot be empty")
	}
	if migrationsPath == "" {
		return errors.New("migrations path cannot be empty")
	}

	sourceURL := migrationsPath
	if !strings.Contains(sourceURL, "://") {
		sourceURL = "file://" + sourceURL
	}

	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	return nil
}
