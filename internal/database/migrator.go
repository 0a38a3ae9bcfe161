package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	defaultMigrationsPath = "db/migrations"
	defaultMaxRetries     = 30
	defaultRetryInterval  = 2 * time.Second
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// Readiness pings a database until it answers or the attempts run out
type Readiness struct {
	db         *sql.DB
	maxRetries int
	interval   time.Duration
}

// NewReadiness creates a readiness probe with the default 30 attempts, 2s apart
func NewReadiness(db *sql.DB) *Readiness {
	return &Readiness{db: db, maxRetries: defaultMaxRetries, interval: defaultRetryInterval}
}

// Wait blocks until the database responds to a ping
func (r *Readiness) Wait(ctx context.Context) error {
	attempts := r.maxRetries
	if attempts <= 0 {
		attempts = defaultMaxRetries
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		lastErr = r.db.PingContext(ctx)
		if lastErr == nil {
			return nil
		}

		slog.Warn("database not ready",
			"attempt", i+1,
			"max_attempts", attempts,
			"error", lastErr.Error(),
		)

		if i == attempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.interval):
		}
	}

	return fmt.Errorf("database not ready after %d attempts: %w", attempts, lastErr)
}

// MigrationRunner applies the warehouse schema migrations
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
}

// NewMigrationRunner creates a new migration runner. An empty path selects db/migrations.
func NewMigrationRunner(db *sql.DB, migrationsPath string) *MigrationRunner {
	if migrationsPath == "" {
		migrationsPath = defaultMigrationsPath
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
	}
}

// RunMigrations executes all pending migrations. It reports false without an
// error when the migrations directory does not exist.
func (mr *MigrationRunner) RunMigrations() (bool, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		slog.Warn("migrations directory not found, skipping migrations", "path", mr.migrationsPath)
		return false, nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return false, err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return false, fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return false, fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return false, fmt.Errorf("migration failed: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		slog.Info("no new migrations to apply", "version", version)
		return true, nil
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return false, fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("applied migrations", "version", newVersion)

	return true, nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, ErrMigrationsNotFound
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}
