package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"finance-pipeline/internal/models"
	"finance-pipeline/internal/validation"

	"github.com/joho/godotenv"
)

var (
	ErrInvalidDatabaseURLScheme = errors.New("DATABASE_URL must start with postgresql:// or postgres://")
	ErrIncompleteDatabaseURL    = errors.New("DATABASE_URL is missing required components")
	ErrInvalidLogLevel          = errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	ErrInvalidLogFormat         = errors.New("LOG_FORMAT must be 'json' or 'text'")
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Paths    PathsConfig
	DBT      DBTConfig
	Metrics  MetricsConfig
	Logging  LoggingConfig
	Rules    models.Rules
}

type ServerConfig struct {
	Port         string
	Host         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
	RetryInterval   time.Duration
	// SkipLoad disables the warehouse load and the audit table
	SkipLoad bool
}

type PathsConfig struct {
	RawInputCSV   string
	ProcessedDir  string
	MigrationsDir string
	RulesFile     string
}

type DBTConfig struct {
	Binary      string
	ProjectDir  string
	ProfilesDir string
	Skip        bool
}

type MetricsConfig struct {
	PushgatewayURL string
	JobName        string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; it never overrides
// variables that are already set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Minute),
		},
		Database: DatabaseConfig{
			Host:            getEnv("POSTGRES_HOST", "postgres"),
			Port:            getEnv("POSTGRES_PORT", "5432"),
			User:            getEnv("POSTGRES_USER", "finance"),
			Password:        getEnv("POSTGRES_PASSWORD", "finance_password"),
			Name:            getEnv("POSTGRES_DB", "finance_dw"),
			SSLMode:         getEnv("POSTGRES_SSLMODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 5),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnectRetries:  getIntEnv("DB_CONNECT_RETRIES", 30),
			RetryInterval:   getDurationEnv("DB_RETRY_INTERVAL", 2*time.Second),
			SkipLoad:        getBoolEnv("SKIP_LOAD", false),
		},
		Paths: PathsConfig{
			RawInputCSV:   getEnv("RAW_INPUT_CSV", "data/raw/financial_transactions.csv"),
			ProcessedDir:  getEnv("PROCESSED_DIR", "data/processed"),
			MigrationsDir: getEnv("MIGRATIONS_DIR", "db/migrations"),
			RulesFile:     getEnv("RULES_FILE", ""),
		},
		DBT: DBTConfig{
			Binary:      getEnv("DBT_BINARY", "dbt"),
			ProjectDir:  getEnv("DBT_PROJECT_DIR", "dbt"),
			ProfilesDir: getEnv("DBT_PROFILES_DIR", "/root/.dbt"),
			Skip:        getBoolEnv("SKIP_DBT", false),
		},
		Metrics: MetricsConfig{
			PushgatewayURL: getEnv("PUSHGATEWAY_URL", ""),
			JobName:        getEnv("METRICS_JOB_NAME", "finance_pipeline"),
		},
		Logging: LoggingConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "json")),
		},
	}

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		if err := config.Database.applyURL(databaseURL); err != nil {
			return nil, err
		}
	}

	rules := models.DefaultRules()
	if config.Paths.RulesFile != "" {
		loaded, err := LoadRules(config.Paths.RulesFile, rules)
		if err != nil {
			return nil, err
		}
		rules = loaded
	}
	rules.Thresholds = thresholdsFromEnv(rules.Thresholds)

	if err := validation.GetValidator().ValidateRules(&rules); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	config.Rules = rules

	if err := config.Logging.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// applyURL overrides the connection settings with those of a postgres:// URL
func (c *DatabaseConfig) applyURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid DATABASE_URL: %w", err)
	}
	if u.Scheme != "postgres" && u.Scheme != "postgresql" {
		return ErrInvalidDatabaseURLScheme
	}

	password, hasPassword := u.User.Password()
	name := strings.TrimPrefix(u.Path, "/")
	if u.Hostname() == "" || u.User.Username() == "" || !hasPassword || name == "" {
		return ErrIncompleteDatabaseURL
	}

	c.Host = u.Hostname()
	c.Port = u.Port()
	if c.Port == "" {
		c.Port = "5432"
	}
	c.User = u.User.Username()
	c.Password = password
	c.Name = name
	if sslMode := u.Query().Get("sslmode"); sslMode != "" {
		c.SSLMode = sslMode
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, quoteDSNValue(c.Password), c.Name, c.SSLMode)
}

// quoteDSNValue quotes a libpq key/value when it contains spaces or quotes
func quoteDSNValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

// Validate checks the logging settings
func (c LoggingConfig) Validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	switch c.Format {
	case "json", "text":
	default:
		return ErrInvalidLogFormat
	}
	return nil
}

// NewLogger builds the process logger described by c
func (c LoggingConfig) NewLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	switch c.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.Format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// IsDevelopment reports whether the server runs in the development environment
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func thresholdsFromEnv(base models.Thresholds) models.Thresholds {
	return models.Thresholds{
		DuplicateTransactionIDPctMax: getFloatEnv("DUPLICATE_TRANSACTION_ID_PCT_MAX", base.DuplicateTransactionIDPctMax),
		InvalidCurrencyPctMax:        getFloatEnv("INVALID_CURRENCY_PCT_MAX", base.InvalidCurrencyPctMax),
		UnparseableDatesPctMax:       getFloatEnv("UNPARSEABLE_DATES_PCT_MAX", base.UnparseableDatesPctMax),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
