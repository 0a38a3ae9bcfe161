package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"finance-pipeline/internal/config"
	"finance-pipeline/internal/models"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB holds the warehouse connection. SQL is the lib/pq pool used for COPY and
// migrations; the embedded gorm.DB shares it for the audit table.
type DB struct {
	*gorm.DB
	SQL    *sql.DB
	config *config.DatabaseConfig
}

// New opens the warehouse and waits until it accepts connections
func New(ctx context.Context, cfg *config.DatabaseConfig) (*DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	readiness := &Readiness{
		db:         sqlDB,
		maxRetries: cfg.ConnectRetries,
		interval:   cfg.RetryInterval,
	}
	if err := readiness.Wait(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), gormConfig)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &DB{
		DB:     db,
		SQL:    sqlDB,
		config: cfg,
	}, nil
}

// AutoMigrate creates the audit table when SQL migrations are unavailable
func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(&models.ValidationRun{})
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Initialize connects to the warehouse and brings its schema up to date
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := New(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	runner := NewMigrationRunner(db.SQL, cfg.Paths.MigrationsDir)
	applied, err := runner.RunMigrations()
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if !applied {
		slog.Warn("no SQL migrations applied, creating audit table with AutoMigrate",
			"migrations_dir", cfg.Paths.MigrationsDir)
		if err := db.AutoMigrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to auto-migrate: %w", err)
		}
	}

	slog.Info("database initialized", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return db, nil
}
