package app

import (
	"context"
	"fmt"
	"log/slog"

	"finance-pipeline/internal/config"
	"finance-pipeline/internal/database"
	"finance-pipeline/internal/handlers"
	"finance-pipeline/internal/repositories"
	"finance-pipeline/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds the wired pipeline shared by the CLI and the HTTP server
type App struct {
	Config   *config.Config
	Registry *prometheus.Registry
	Metrics  *services.PrometheusMetrics
	Reports  repositories.ReportRepositoryInterface
	Pipeline *services.PipelineService
	// DB is nil when the warehouse load is skipped
	DB *database.DB
}

// New connects the optional warehouse and wires every pipeline stage
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pipelineLogger := services.NewPipelineLogger(logger)
	metrics := services.NewPrometheusMetrics(registry, cfg.Metrics.PushgatewayURL, cfg.Metrics.JobName)
	reports := repositories.NewFileReportRepository()
	mapper := services.NewCategoryMapper(cfg.Rules.SynonymTable())

	deps := services.PipelineDependencies{
		Extractor: services.NewExtractService(nil),
		Batches:   repositories.NewCSVBatchRepository(),
		Reports:   reports,
		Gate:      services.NewQualityGate(cfg.Rules),
		Cleaner:   services.NewCleaner(cfg.Rules, mapper),
		Metrics:   metrics,
		Logger:    pipelineLogger,
	}

	a := &App{
		Config:   cfg,
		Registry: registry,
		Metrics:  metrics,
		Reports:  reports,
	}

	if !cfg.Database.SkipLoad {
		db, err := database.Initialize(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize warehouse: %w", err)
		}
		a.DB = db
		deps.Warehouse = repositories.NewWarehouseRepository(db.SQL)
		deps.ValidationRuns = repositories.NewValidationRunRepository(db.DB)
	} else {
		logger.Info("warehouse load disabled", "skip_load", true)
	}

	if !cfg.DBT.Skip {
		deps.Tool = services.NewDBTRunner(services.DBTConfig{
			Binary:      cfg.DBT.Binary,
			ProjectDir:  cfg.DBT.ProjectDir,
			ProfilesDir: cfg.DBT.ProfilesDir,
		}, services.NewExecCommandRunner(), pipelineLogger)
	}

	a.Pipeline = services.NewPipelineService(services.PipelineConfig{
		RawInputCSV:  cfg.Paths.RawInputCSV,
		ProcessedDir: cfg.Paths.ProcessedDir,
		Thresholds:   cfg.Rules.Thresholds,
	}, deps)

	return a, nil
}

// HealthChecker returns the warehouse as a health dependency, or nil without one
func (a *App) HealthChecker() handlers.HealthChecker {
	if a.DB == nil {
		return nil
	}
	return a.DB
}

// Close releases the warehouse connection
func (a *App) Close() error {
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
